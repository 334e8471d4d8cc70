package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

// recordFile is the document layout of a record file. A bare list of
// records is accepted too.
type recordFile struct {
	Medias []*pdraw.MediaInfo `json:"medias" yaml:"medias"`
}

// loadRecords reads the media-info records of a YAML or JSON file. JSON is
// picked by the .json extension, YAML otherwise.
func loadRecords(path string) ([]*pdraw.MediaInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func decodeRecords(data []byte, isJSON bool) ([]*pdraw.MediaInfo, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if isJSON {
		if trimmed[0] == '[' {
			var list []*pdraw.MediaInfo
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, err
			}
			return list, nil
		}
		var f recordFile
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, err
		}
		return f.Medias, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var list []*pdraw.MediaInfo
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var f recordFile
	if err := node.Decode(&f); err != nil {
		return nil, err
	}
	return f.Medias, nil
}
