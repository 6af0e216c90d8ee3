package records

import (
	"time"

	"example.com/healthrecords/internal/internalrecord"
)

// DeviceType classifies the device that produced a record.
type DeviceType int

const (
	DeviceTypeUnknown DeviceType = iota
	DeviceTypeWatch
	DeviceTypePhone
	DeviceTypeScale
	DeviceTypeRing
	DeviceTypeHeadMounted
	DeviceTypeFitnessBand
	DeviceTypeChestStrap
	DeviceTypeSmartDisplay
)

var validDeviceTypes = []DeviceType{
	DeviceTypeUnknown, DeviceTypeWatch, DeviceTypePhone, DeviceTypeScale, DeviceTypeRing,
	DeviceTypeHeadMounted, DeviceTypeFitnessBand, DeviceTypeChestStrap, DeviceTypeSmartDisplay,
}

// ParseDeviceType converts a raw integer into a DeviceType.
func ParseDeviceType(raw int) (DeviceType, error) {
	return parseEnum(raw, validDeviceTypes, "deviceType")
}

func (d *DeviceType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, d)
}

// RecordingMethod describes how a record was captured.
type RecordingMethod int

const (
	RecordingMethodUnknown RecordingMethod = iota
	RecordingMethodActivelyRecorded
	RecordingMethodAutomaticallyRecorded
	RecordingMethodManualEntry
)

var validRecordingMethods = []RecordingMethod{
	RecordingMethodUnknown, RecordingMethodActivelyRecorded,
	RecordingMethodAutomaticallyRecorded, RecordingMethodManualEntry,
}

// ParseRecordingMethod converts a raw integer into a RecordingMethod.
func ParseRecordingMethod(raw int) (RecordingMethod, error) {
	return parseEnum(raw, validRecordingMethods, "recordingMethod")
}

func (m *RecordingMethod) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m)
}

// Device describes the hardware a record came from.
type Device struct {
	Manufacturer string     `json:"manufacturer,omitempty"`
	Model        string     `json:"model,omitempty"`
	Type         DeviceType `json:"type"`
}

// DataOrigin identifies the application that wrote a record.
type DataOrigin struct {
	PackageName string `json:"package_name"`
}

// Metadata carries identity and provenance for a record. The zero ID and the
// Unix epoch LastModified are placeholders that storage replaces on insert.
type Metadata struct {
	id                  string
	dataOrigin          DataOrigin
	lastModified        time.Time
	clientRecordID      *string
	clientRecordVersion int64
	device              Device
	recordingMethod     RecordingMethod
}

// MetadataOption configures NewMetadata.
type MetadataOption func(*Metadata)

// WithID sets the record identifier.
func WithID(id string) MetadataOption {
	return func(m *Metadata) { m.id = id }
}

// WithDataOrigin sets the writing application's package name.
func WithDataOrigin(packageName string) MetadataOption {
	return func(m *Metadata) { m.dataOrigin = DataOrigin{PackageName: packageName} }
}

// WithLastModified sets the last modification time.
func WithLastModified(t time.Time) MetadataOption {
	return func(m *Metadata) { m.lastModified = t }
}

// WithClientRecordID sets the caller's own identifier and version for the record.
func WithClientRecordID(id string, version int64) MetadataOption {
	return func(m *Metadata) {
		m.clientRecordID = &id
		m.clientRecordVersion = version
	}
}

// WithDevice sets the source device.
func WithDevice(d Device) MetadataOption {
	return func(m *Metadata) { m.device = d }
}

// WithRecordingMethod sets how the record was captured.
func WithRecordingMethod(method RecordingMethod) MetadataOption {
	return func(m *Metadata) { m.recordingMethod = method }
}

// NewMetadata builds Metadata from options.
func NewMetadata(opts ...MetadataOption) Metadata {
	m := Metadata{lastModified: time.Unix(0, 0).UTC()}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Metadata) ID() string                       { return m.id }
func (m Metadata) DataOrigin() DataOrigin           { return m.dataOrigin }
func (m Metadata) LastModified() time.Time          { return m.lastModified }
func (m Metadata) ClientRecordVersion() int64       { return m.clientRecordVersion }
func (m Metadata) Device() Device                   { return m.device }
func (m Metadata) RecordingMethod() RecordingMethod { return m.recordingMethod }

// ClientRecordID returns the caller-supplied identifier, if any.
func (m Metadata) ClientRecordID() (string, bool) {
	if m.clientRecordID == nil {
		return "", false
	}
	return *m.clientRecordID, true
}

func (m Metadata) normalize() Metadata {
	out := m
	out.lastModified = m.lastModified.UTC()
	if m.clientRecordID != nil {
		id := *m.clientRecordID
		out.clientRecordID = &id
	}
	return out
}

func (m Metadata) stamp(id string, lastModified time.Time) Metadata {
	m = m.normalize()
	m.id = id
	m.lastModified = lastModified.Round(0).UTC()
	return m
}

func (m Metadata) validate() error {
	if err := validateEnum(m.device.Type, validDeviceTypes, "deviceType"); err != nil {
		return err
	}
	return validateEnum(m.recordingMethod, validRecordingMethods, "recordingMethod")
}

func (m Metadata) toInternal() internalrecord.Metadata {
	out := internalrecord.Metadata{
		UUID:                m.id,
		PackageName:         m.dataOrigin.PackageName,
		LastModifiedTime:    m.lastModified.UnixMilli(),
		ClientRecordVersion: m.clientRecordVersion,
		Manufacturer:        m.device.Manufacturer,
		Model:               m.device.Model,
		DeviceType:          int(m.device.Type),
		RecordingMethod:     int(m.recordingMethod),
	}
	if id, ok := m.ClientRecordID(); ok {
		out.ClientRecordID = &id
	}
	return out
}

// metadataJSON is the serialized form used for canonical encoding and the API.
type metadataJSON struct {
	ID                  string          `json:"id"`
	DataOrigin          DataOrigin      `json:"data_origin"`
	LastModified        time.Time       `json:"last_modified"`
	ClientRecordID      *string         `json:"client_record_id,omitempty"`
	ClientRecordVersion int64           `json:"client_record_version"`
	Device              Device          `json:"device"`
	RecordingMethod     RecordingMethod `json:"recording_method"`
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return marshalJSON(metadataJSON{
		ID:                  m.id,
		DataOrigin:          m.dataOrigin,
		LastModified:        m.lastModified,
		ClientRecordID:      m.clientRecordID,
		ClientRecordVersion: m.clientRecordVersion,
		Device:              m.device,
		RecordingMethod:     m.recordingMethod,
	})
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw metadataJSON
	if err := unmarshalJSON(data, &raw); err != nil {
		return err
	}
	opts := []MetadataOption{
		WithID(raw.ID),
		WithDataOrigin(raw.DataOrigin.PackageName),
		WithDevice(raw.Device),
		WithRecordingMethod(raw.RecordingMethod),
	}
	if !raw.LastModified.IsZero() {
		opts = append(opts, WithLastModified(raw.LastModified))
	}
	if raw.ClientRecordID != nil {
		opts = append(opts, WithClientRecordID(*raw.ClientRecordID, raw.ClientRecordVersion))
	}
	*m = NewMetadata(opts...)
	return nil
}
