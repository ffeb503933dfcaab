package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// OptionalUUID tells "absent" apart from an explicit null in a JSON patch.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		o.Value = nil
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	o.Value = &id
	return nil
}
