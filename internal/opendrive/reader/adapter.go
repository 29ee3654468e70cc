// Package reader implements §6's external-binder boundary: a registry of
// per-version adapters that decode an OpenDRIVE XML document into the
// core's single normalised opendrive.Model. Real XSD-bound XML binding is
// explicitly out of scope (§1); each adapter here does a minimal
// encoding/xml decode and normalises version-specific shapes itself.
package reader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rtron-go/rtron/internal/opendrive"
)

// ErrNoDedicatedReaderAvailable is returned when the document declares a
// schema version with no registered Adapter.
type ErrNoDedicatedReaderAvailable struct {
	Version string
}

func (e *ErrNoDedicatedReaderAvailable) Error() string {
	return fmt.Sprintf("NoDedicatedReaderAvailable(%s)", e.Version)
}

// ErrNoDedicatedSchemaAvailable is returned when the document declares a
// schema version with no bundled schema resource (§8 scenario 6).
type ErrNoDedicatedSchemaAvailable struct {
	Version string
}

func (e *ErrNoDedicatedSchemaAvailable) Error() string {
	return fmt.Sprintf("NoDedicatedSchemaAvailable(%s)", e.Version)
}

// Adapter parses one supported OpenDRIVE schema version into the core's
// normalised opendrive.Model.
type Adapter interface {
	Parse(r io.Reader) (*opendrive.Model, error)
}

// xmlAdapter is the one Adapter implementation every registered version
// shares: per-version XML field renames don't exist in the subset of the
// schema the core consumes, so every supported version decodes through
// the same xmlDocument shape and normalize step.
type xmlAdapter struct{}

func (xmlAdapter) Parse(r io.Reader) (*opendrive.Model, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("opendrive reader: decode: %w", err)
	}
	return normalize(doc), nil
}

// Parse reads an OpenDRIVE document, peeks its declared schema version,
// and dispatches to the registered Adapter for that version.
func Parse(r io.Reader) (*opendrive.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("opendrive reader: read: %w", err)
	}

	var peek xmlDocument
	if err := xml.Unmarshal(data, &peek); err != nil {
		return nil, fmt.Errorf("opendrive reader: decode: %w", err)
	}

	version := schemaVersion(peek.Header)
	if !hasSchema(version) {
		return nil, &ErrNoDedicatedSchemaAvailable{Version: version}
	}
	adapter, ok := registry[version]
	if !ok {
		return nil, &ErrNoDedicatedReaderAvailable{Version: version}
	}

	return adapter.Parse(bytes.NewReader(data))
}
