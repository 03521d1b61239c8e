package cv

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// maxSchemaErrors caps how many shape violations end up in the error message.
const maxSchemaErrors = 3

//go:embed schema.json
var schemaJSON []byte

//nolint:gochecknoglobals // Compiled once, read-only afterwards
var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// Schema returns the compiled JSON schema a record has to satisfy.
func Schema() (s *gojsonschema.Schema, err error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
		if schemaErr != nil {
			schemaErr = errors.Wrap(schemaErr, "failed to compile resume schema")
		}
	})
	s = schema
	err = schemaErr
	return s, err
}

// Load reads a resume record from a JSON file.
func Load(path string) (doc Document, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume file: %s", path)
		return doc, err
	}

	doc, err = Decode(fileData)
	if err != nil {
		err = errors.Wrapf(err, "failed to load resume: %s", path)
		return doc, err
	}

	return doc, err
}

// Decode turns a JSON payload into a Document. Missing optional fields are
// left empty; a missing required field or a wrongly shaped value fails the
// whole decode with a single error.
func Decode(data []byte) (doc Document, err error) {
	err = Validate(data)
	if err != nil {
		return doc, err
	}

	err = json.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrap(err, "failed to parse resume JSON")
		return doc, err
	}

	return doc, err
}

// Validate checks the payload against the record schema.
func Validate(data []byte) (err error) {
	var s *gojsonschema.Schema
	s, err = Schema()
	if err != nil {
		return err
	}

	var result *gojsonschema.Result
	result, err = s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		err = errors.Wrap(err, "failed to parse resume JSON")
		return err
	}

	if result.Valid() {
		return err
	}

	msgs := make([]string, 0, maxSchemaErrors)
	for i, resultErr := range result.Errors() {
		if i == maxSchemaErrors {
			msgs = append(msgs, "...")
			break
		}
		msgs = append(msgs, resultErr.String())
	}

	err = errors.Errorf("invalid resume record: %s", strings.Join(msgs, "; "))
	return err
}
