package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
site_url = "https://acme.test/"
company_name = "Acme"
entity_type = "Organization"
logo_url = "https://acme.test/logo.png"
telephone = "+81-3-0000-0000"
holiday_enabled = true
holiday_mode = "weekday"
languages = ["ja"]
content_model = "BlogPosting"
skip_local_business_if_incomplete = true

[[social_links]]
network = "facebook"
value = "acme"

[[social_links]]
network = "x"
value = "@acme"

[address]
street = "1-2-3 Chiyoda"
locality = "Tokyo"
region = "Tokyo"
postal = "100-0001"
country = "JP"

[geo]
latitude = "35.68"
longitude = "139.69"

[[opening_hours]]
day_key = "Monday"
opens = "09:00"
closes = "18:00"

[[opening_hours]]
day_key = "Saturday"

[[opening_hours.slots]]
opens = "10:00"
closes = "13:00"

[[opening_hours.slots]]
opens = "14:00"
closes = "17:00"

[content_type_settings.post]
schema_type = "NewsArticle"
breadcrumb_enabled = true

[content_type_settings.product]
schema_type = "Product"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	opts, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "https://acme.test/", opts.SiteURL)
	assert.Equal(t, "Organization", opts.EntityType)
	assert.True(t, opts.HolidayEnabled)
	assert.Equal(t, "weekday", opts.HolidayMode)
	assert.Equal(t, []string{"ja"}, opts.Languages)
	assert.Len(t, opts.SocialLinks, 2)
	assert.Equal(t, "Tokyo", opts.Address.Locality)
	assert.Equal(t, "35.68", opts.Geo.Latitude)

	require.Len(t, opts.OpeningHours, 2)
	assert.Equal(t, "Monday", opts.OpeningHours[0].DayKey)
	require.Len(t, opts.OpeningHours[1].Slots, 2)
	assert.Equal(t, "14:00", opts.OpeningHours[1].Slots[1].Opens)

	ts, ok := opts.TypeSettingsFor("post")
	require.True(t, ok)
	assert.Equal(t, "NewsArticle", ts.SchemaType)
	require.NotNil(t, ts.BreadcrumbEnabled)
	assert.True(t, *ts.BreadcrumbEnabled)

	_, ok = opts.TypeSettingsFor("page")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "site_url = ["))
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, `company_name = "Before"`)

	reloaded := make(chan *Options, 1)
	w := NewWatcher(path, func(opts *Options) {
		reloaded <- opts
	}).WithDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`company_name = "After"`), 0o644))

	select {
	case opts := <-reloaded:
		assert.Equal(t, "After", opts.CompanyName)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not reload in time")
	}

	cancel()
	<-done
}
