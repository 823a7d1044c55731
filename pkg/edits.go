// Package pkg provides functionality for patching third-generation GBA save files.
// This file contains loaders for edit lists given on the command line or in YAML files.
package pkg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hansbonini/savetools/pkg/common"
	"gopkg.in/yaml.v3"
)

// ParseEdit parses an edit written as "section:offset=value[,value...]",
// for example "4:0xe89=0" or "3:0x100=0xde,0xad".
func ParseEdit(text string) (Edit, error) {
	target, values, ok := strings.Cut(text, "=")
	if !ok {
		return Edit{}, common.FormatErrorString(common.ErrFailedToParseEdit, "%q: missing '='", text)
	}
	sectionText, offsetText, ok := strings.Cut(target, ":")
	if !ok {
		return Edit{}, common.FormatErrorString(common.ErrFailedToParseEdit, "%q: missing ':'", text)
	}

	sectionNumber, err := common.ParseNumber(sectionText)
	if err != nil {
		return Edit{}, common.FormatError(common.ErrFailedToParseEdit, err)
	}
	section, err := common.SafeIntToUint16(sectionNumber)
	if err != nil {
		return Edit{}, common.FormatError(common.ErrFailedToParseEdit, err)
	}
	offset, err := common.ParseNumber(offsetText)
	if err != nil {
		return Edit{}, common.FormatError(common.ErrFailedToParseEdit, err)
	}
	payload, err := common.ParseByteList(values)
	if err != nil {
		return Edit{}, common.FormatError(common.ErrFailedToParseEdit, err)
	}

	edit := Edit{Section: section, Offset: offset, Values: payload}
	common.LogDebug(common.DebugEditParsed, edit.Section, edit.Offset, edit.Values)
	return edit, nil
}

// ParseEdits parses every edit in texts.
func ParseEdits(texts []string) ([]Edit, error) {
	edits := make([]Edit, 0, len(texts))
	for _, text := range texts {
		edit, err := ParseEdit(text)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

// LoadEdits reads an edit list from a YAML file:
//
//	edits:
//	  - section: 4
//	    offset: 0xe89
//	    values: [0]
func LoadEdits(yamlFile string) ([]Edit, error) {
	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToReadYAMLFile, err)
	}

	var list EditList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, common.FormatError(common.ErrFailedToParseYAML, err)
	}

	edits := make([]Edit, 0, len(list.Edits))
	for i, entry := range list.Edits {
		edit, err := entry.toEdit()
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", common.ErrFailedToLoadEdits, i, err)
		}
		common.LogDebug(common.DebugEditParsed, edit.Section, edit.Offset, edit.Values)
		edits = append(edits, edit)
	}
	return edits, nil
}

func (e EditEntry) toEdit() (Edit, error) {
	section, err := common.SafeIntToUint16(e.Section)
	if err != nil {
		return Edit{}, fmt.Errorf("section: %w", err)
	}
	if e.Offset < 0 {
		return Edit{}, fmt.Errorf("offset %d is negative", e.Offset)
	}
	if len(e.Values) == 0 {
		return Edit{}, errors.New("no values")
	}
	values, err := common.SafeIntsToBytes(e.Values)
	if err != nil {
		return Edit{}, err
	}
	return Edit{Section: section, Offset: e.Offset, Values: values}, nil
}
