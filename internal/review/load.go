package review

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"talentiq/internal/model"
	"talentiq/internal/util/id"
)

var validate = newValidator()

// newValidator registers "record_id", which accepts exactly what id.Valid
// accepts (any case, braces, urn prefix).
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("record_id", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	return v
}

// Load reads a review document, picking the decoder from the file
// extension (.json, .toml, .yaml, .yml). A missing ID is filled with a fresh
// one.
func Load(path string) (model.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Resume{}, errors.Wrap(err, "reading review")
	}
	r, err := Decode(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return model.Resume{}, errors.Wrapf(err, "loading %s", path)
	}
	if r.FileName == "" {
		r.FileName = filepath.Base(path)
	}
	return r, nil
}

// Decode parses and validates a review document in the format named by ext.
func Decode(data []byte, ext string) (model.Resume, error) {
	var r model.Resume
	switch ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return model.Resume{}, errors.Wrap(err, "parsing json")
		}
	case ".toml":
		md, err := toml.Decode(string(data), &r)
		if err != nil {
			return model.Resume{}, errors.Wrap(err, "parsing toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return model.Resume{}, errors.Newf("parsing toml: unknown field %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return model.Resume{}, errors.Wrap(err, "parsing yaml")
		}
	default:
		return model.Resume{}, errors.WithHint(
			errors.Newf("unsupported review format %q", ext),
			"use a .json, .toml or .yaml file")
	}
	if err := Validate(r); err != nil {
		return model.Resume{}, err
	}
	if r.ID == "" {
		r.ID = id.New()
	}
	return r, nil
}

// Validate checks score ranges, tip types and the optional ID.
func Validate(r model.Resume) error {
	if err := validate.Struct(r); err != nil {
		return errors.WithHint(errors.Wrap(err, "invalid review"),
			"scores must be 0..100 and tip types good or improve")
	}
	return nil
}
