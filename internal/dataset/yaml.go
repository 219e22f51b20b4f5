package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML is strict about fields so that typos such as "uncertanity"
// fail loudly instead of silently reading as zero.
func decodeYAML(r io.Reader) (fileTransect, error) {
	var ft fileTransect
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ft); err != nil {
		if errors.Is(err, io.EOF) {
			return fileTransect{}, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return fileTransect{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return ft, nil
}

func decodeJSON(r io.Reader) (fileTransect, error) {
	var ft fileTransect
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ft); err != nil {
		return fileTransect{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return ft, nil
}
