package network

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "networks.yaml"))
	require.NoError(t, err)

	require.Len(t, f.Networks, 5)
	assert.Equal(t, "1", f.Version)

	office := f.Networks[3]
	assert.Equal(t, "office", office.Name)
	require.NotNil(t, office.AnonymousIdentity)
	assert.Equal(t, "someone", *office.AnonymousIdentity)
	assert.Equal(t, "PEAP", office.EAP)

	broken := f.Networks[4]
	assert.Nil(t, broken.SSID, "absent ssid must stay nil")
}

func TestParseYAMLKeepsEmptyStrings(t *testing.T) {
	f, err := ParseYAML([]byte("version: 1\nnetworks:\n  - scheme: WPA\n    ssid: \"\"\n    password: \"\"\n"))
	require.NoError(t, err)

	n := f.Networks[0]
	require.NotNil(t, n.SSID)
	require.NotNil(t, n.Password)

	p, err := n.Payload()
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:;P:;H:false;;", p.Encode())
}

func TestParseRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"WrongVersion", "version: 2\nnetworks:\n  - scheme: nopass\n", ErrUnsupportedVersion},
		{"MissingVersion", "networks:\n  - scheme: nopass\n", ErrUnsupportedVersion},
		{"BadVersion", "version: one\nnetworks:\n  - scheme: nopass\n", ErrUnsupportedVersion},
		{"NoNetworks", "version: 1\nnetworks: []\n", ErrNoNetworks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ParseYAML([]byte("version: [1\n"))
	assert.Error(t, err)
}

func TestCBORRoundTripProducesSamePayloads(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "networks.yaml"))
	require.NoError(t, err)

	data, err := f.EncodeCBOR()
	require.NoError(t, err)

	decoded, err := ParseCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, f, decoded)

	enc := NewEncoder("test", nil)
	want := enc.EncodeFile(f)
	got := enc.EncodeFile(decoded)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Payload, got[i].Payload)
		assert.Equal(t, want[i].OK(), got[i].OK())
	}
}

func TestLoadCBORFile(t *testing.T) {
	f := &File{
		Version: FileVersion,
		Networks: []Network{
			{Name: "home", Scheme: "WPA", SSID: str("home"), Password: str("pw")},
		},
	}
	data, err := f.Encode(FormatCBOR)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "networks.cbor")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestYAMLEncodeRoundTrip(t *testing.T) {
	f := &File{
		Version: FileVersion,
		Networks: []Network{
			{Scheme: "nopass", SSID: str("guest"), Hidden: true},
		},
	}
	data, err := f.Encode(FormatYAML)
	require.NoError(t, err)

	decoded, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, f, decoded)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"dir/a.YML", FormatYAML, false},
		{"a.cbor", FormatCBOR, false},
		{"a.json", 0, true},
		{"noext", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
