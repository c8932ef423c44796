package app

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// ResultSet is the wire format of a query response. Key and Value of the
// response each hold one, with the same number of entries.
type ResultSet struct {
	Results [][]byte
}

func (r *ResultSet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(r)
}

// Unmarshal resets the set first. An empty input is an empty set.
func (r *ResultSet) Unmarshal(raw []byte) error {
	r.Results = nil
	if len(raw) == 0 {
		return nil
	}
	if err := cdc.UnmarshalBinaryBare(raw, r); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// EncodeModels serializes the keys and the values of models into the two
// result sets of a query response.
func EncodeModels(models []revshare.Model) (keys, values []byte, err error) {
	var k, v ResultSet
	for _, m := range models {
		k.Results = append(k.Results, m.Key)
		v.Results = append(v.Results, m.Value)
	}
	if keys, err = k.Marshal(); err != nil {
		return nil, nil, errors.Wrap(err, "keys")
	}
	if values, err = v.Marshal(); err != nil {
		return nil, nil, errors.Wrap(err, "values")
	}
	return keys, values, nil
}

// DecodeModels reverses EncodeModels.
func DecodeModels(keys, values []byte) ([]revshare.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	if len(k.Results) != len(v.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(k.Results), len(v.Results))
	}
	models := make([]revshare.Model, len(k.Results))
	for i, key := range k.Results {
		models[i] = revshare.Pair(key, v.Results[i])
	}
	return models, nil
}
