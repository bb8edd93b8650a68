package document

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/version"
)

// SupportedFormats is the range of document format versions this build reads.
const SupportedFormats = version.DocumentFormats

var supportedFormats = func() *semver.Constraints {
	c, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		panic(err)
	}
	return c
}()

func checkFormat(format string) (*semver.Version, error) {
	if format == "" {
		return nil, errors.WithHint(
			errors.NewInvalidDocumentError("missing format version"),
			`add format: "1.0" to the document`)
	}

	v, err := semver.NewVersion(format)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid format version %q", format), errors.ErrInvalidDocument)
	}

	if !supportedFormats.Check(v) {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedFormat, "format %s", v),
			"this build reads documents matching %s", SupportedFormats)
	}
	return v, nil
}
