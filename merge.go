package yamlfile

import "reflect"

// Merge deep-merges override into the Document and returns the result as
// a new, independent Document. The receiver is never mutated.
//
// Where both sides hold a mapping under the same key, the mappings merge
// recursively. Any other override value, sequences included, replaces the
// base value wholesale. Keys present only in the base keep their position;
// keys present only in the override are appended in override order.
//
// The result is a deep copy and inherits the base Origin, so a later
// Save with no explicit path still targets the base's file.
func (d *Document) Merge(override Mapping) *Document {
	base, ok := d.data.(Mapping)
	if !ok {
		return &Document{data: deepCopy(d.data), origin: d.origin}
	}

	return &Document{data: deepMerge(base, override), origin: d.origin}
}

func deepMerge(base, override Mapping) Mapping {
	result := make(Mapping, 0, len(base)+len(override))

	for _, item := range base {
		result = append(result, MapItem{Key: item.Key, Value: deepCopy(item.Value)})
	}

	for _, item := range override {
		idx := indexOfKey(result, item.Key)
		if idx < 0 {
			result = append(result, MapItem{Key: item.Key, Value: deepCopy(item.Value)})

			continue
		}

		baseChild, baseIsMapping := result[idx].Value.(Mapping)

		overrideChild, overrideIsMapping := item.Value.(Mapping)
		if baseIsMapping && overrideIsMapping {
			result[idx].Value = deepMerge(baseChild, overrideChild)
		} else {
			result[idx].Value = deepCopy(item.Value)
		}
	}

	return result
}

func deepCopy(value any) any {
	switch node := value.(type) {
	case Mapping:
		result := make(Mapping, len(node))
		for i, item := range node {
			result[i] = MapItem{Key: item.Key, Value: deepCopy(item.Value)}
		}

		return result
	case []any:
		result := make([]any, len(node))
		for i, element := range node {
			result[i] = deepCopy(element)
		}

		return result
	default:
		return value
	}
}

// indexOfKey matches keys of any type. reflect.DeepEqual keeps the match
// safe for uncomparable key types the parser may produce.
func indexOfKey(mapping Mapping, key any) int {
	for i, item := range mapping {
		if reflect.DeepEqual(item.Key, key) {
			return i
		}
	}

	return -1
}
