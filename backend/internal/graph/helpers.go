package graph

import "github.com/neo4j/neo4j-go-driver/v5/neo4j"

func getString(record *neo4j.Record, key string, defaultValue string) string {
	val, ok := record.Get(key)
	if !ok {
		return defaultValue
	}
	if str, ok := val.(string); ok {
		return str
	}
	return defaultValue
}

func getBool(record *neo4j.Record, key string, defaultValue bool) bool {
	val, ok := record.Get(key)
	if !ok {
		return defaultValue
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return defaultValue
}
