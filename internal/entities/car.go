package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var ErrCarNotFound = errors.New("car not found")

// CarSummary is the read-only slice of inventory metadata this service
// needs: rental pricing and the availability flag. DailyRate is in minor
// currency units.
type CarSummary struct {
	CarID     string
	Brand     string
	Model     string
	DailyRate int
	Available bool
}

func (c *CarSummary) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *CarSummary) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(c)
}

func init() {
	gob.Register(CarSummary{})
}
