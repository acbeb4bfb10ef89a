package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

func saveJSON(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}
