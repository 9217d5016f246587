package tabkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
)

// mappingFile is the on-disk schema description consumed by LoadMappingFile:
//
//	required = ["full_name"]
//
//	[columns]
//	full_name = ["name", "first name"]
//	years_old = ["age"]
type mappingFile struct {
	Required []string            `toml:"required" json:"required"`
	Columns  map[string][]string `toml:"columns" json:"columns"`
}

// LoadMappingFile reads a column mapping and its required-column list from a
// TOML or JSON file, chosen by extension (.json is JSON, everything else is
// parsed as TOML).
func LoadMappingFile(path string) (models.ColumnMapping, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var mf mappingFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &mf)
	} else {
		err = toml.Unmarshal(data, &mf)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parsing mapping file %s: %w", path, err)
	}

	return models.ColumnMapping(mf.Columns), mf.Required, nil
}
