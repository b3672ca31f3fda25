package types

// JSONMap is a free-form JSON object persisted through gorm's json serializer.
type JSONMap map[string]any
