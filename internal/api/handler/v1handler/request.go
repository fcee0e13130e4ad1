package v1handler

import (
	"phishsniper/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	URL     string
	Verbose bool
}

// Decode reads the request from d. The url field is required.
func (r *AnalyzeRequest) Decode(d *jx.Decoder) error {
	seen := false
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "url":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode url")
			}
			r.URL, seen = v, true
		case "verbose":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode verbose")
			}
			r.Verbose = v
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode AnalyzeRequest")
	}
	if !seen {
		return errors.New("url is required")
	}

	return nil
}

// BatchRequest is the body of POST /v1/batch.
type BatchRequest struct {
	URLs    []string
	Verbose bool
}

// Decode reads the request from d. The urls field is required.
func (r *BatchRequest) Decode(d *jx.Decoder) error {
	seen := false
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "urls":
			seen = true
			r.URLs = []string{}

			return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
				v, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "decode urls item")
				}
				r.URLs = append(r.URLs, v)

				return nil
			})
		case "verbose":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode verbose")
			}
			r.Verbose = v
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode BatchRequest")
	}
	if !seen {
		return errors.New("urls is required")
	}

	return nil
}

type decoder interface {
	Decode(d *jx.Decoder) error
}

// decodeBody decodes a JSON body into v and rejects trailing data.
func decodeBody(body []byte, v decoder) error {
	d := jx.DecodeBytes(body)
	if err := v.Decode(d); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", err.Error())
	}
	if d.Next() != jx.Invalid {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: unexpected trailing data")
	}

	return nil
}
