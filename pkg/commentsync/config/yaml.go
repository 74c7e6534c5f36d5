package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// applyYAML applies a YAML mapping. Each key is decoded on its own so one
// bad value does not discard the rest of the file.
func (l *loader) applyYAML(data []byte) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	if n, ok := doc["source_file"]; ok {
		l.setPath(KeySourceFile, &l.opts.SourceFile, n.Value)
	}
	if n, ok := doc["target_file"]; ok {
		l.setPath(KeyTargetFile, &l.opts.TargetFile, n.Value)
	}
	if n, ok := doc["output_file"]; ok {
		l.setPath(KeyOutputFile, &l.opts.OutputFile, n.Value)
	}
	if n, ok := doc["col_region"]; ok {
		l.setColumn(KeyRegionColumn, &l.opts.RegionColumn, n.Value)
	}
	if n, ok := doc["col_name"]; ok {
		l.setColumn(KeyNameColumn, &l.opts.NameColumn, n.Value)
	}
	if n, ok := doc["cols_to_sync"]; ok {
		values, err := nodeList(&n)
		if err != nil {
			l.warn(KeySyncColumns, n.Value, err)
		} else {
			l.setColumns(values)
		}
	}
	if n, ok := doc["target_region"]; ok {
		values, err := nodeList(&n)
		if err != nil {
			l.warn(KeyTargetRegion, n.Value, err)
		} else {
			l.setRegions(values)
		}
	}
	if n, ok := doc["merge_comments"]; ok {
		var b bool
		if err := n.Decode(&b); err != nil {
			l.warn(KeyMergeComments, n.Value, err)
		} else {
			l.opts.MergeComments = b
		}
	}
	if n, ok := doc["merge_separator"]; ok {
		l.setSeparator(n.Value)
	}
	if n, ok := doc["start_row"]; ok {
		var v int
		if err := n.Decode(&v); err != nil {
			l.warn(KeyStartRow, n.Value, err)
		} else {
			l.setPositive(KeyStartRow, &l.opts.StartRow, v, n.Value)
		}
	}
	if n, ok := doc["truncate_length"]; ok {
		var v int
		if err := n.Decode(&v); err != nil {
			l.warn(KeyTruncateLength, n.Value, err)
		} else {
			l.setPositive(KeyTruncateLength, &l.opts.TruncateLength, v, n.Value)
		}
	}

	return nil
}

// nodeList accepts a sequence, a comma-separated scalar or null.
func nodeList(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a scalar", item.Line)
			}
			out = append(out, item.Value)
		}
		return out, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return splitList(n.Value), nil
	default:
		return nil, fmt.Errorf("line %d: expected a list or a string", n.Line)
	}
}
