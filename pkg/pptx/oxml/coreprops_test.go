package oxml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><dc:title>Annual Report</dc:title><dc:creator>Sam</dc:creator><cp:keywords>finance, 2024</cp:keywords><cp:lastModifiedBy>Sam</cp:lastModifiedBy><cp:revision>3</cp:revision><dcterms:created xsi:type="dcterms:W3CDTF">2024-01-15T08:30:00Z</dcterms:created><dcterms:modified xsi:type="dcterms:W3CDTF">2024-02-01T17:45:00Z</dcterms:modified></cp:coreProperties>`

func TestParseCoreProperties(t *testing.T) {
	props, err := ParseCoreProperties([]byte(testCorePropsXML))
	require.NoError(t, err)

	assert.Equal(t, "Annual Report", props.Title)
	assert.Equal(t, "Sam", props.Creator)
	assert.Equal(t, "finance, 2024", props.Keywords)
	assert.Equal(t, "Sam", props.LastModifiedBy)
	assert.Equal(t, "3", props.Revision)
	assert.Equal(t, "2024-01-15T08:30:00Z", props.Created)
	assert.Equal(t, "2024-02-01T17:45:00Z", props.Modified)
}

func TestCoreProperties_SerializeRoundTrip(t *testing.T) {
	props, err := ParseCoreProperties([]byte(testCorePropsXML))
	require.NoError(t, err)

	props.Title = "Annual Report <draft>"
	props.Subject = "Results & Outlook"
	props.SetModified(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	blob, err := props.Serialize()
	require.NoError(t, err)

	reparsed, err := ParseCoreProperties(blob)
	require.NoError(t, err)
	assert.Equal(t, props, reparsed)
	assert.Equal(t, "2024-03-01T09:00:00Z", reparsed.Modified)
}

func TestCoreProperties_SerializeOmitsEmpty(t *testing.T) {
	props := &CoreProperties{Title: "Only a Title"}

	blob, err := props.Serialize()
	require.NoError(t, err)

	s := string(blob)
	assert.Contains(t, s, "<dc:title>Only a Title</dc:title>")
	assert.NotContains(t, s, "<dc:creator>")
	assert.NotContains(t, s, "<dcterms:created")
	assert.NotContains(t, s, "<dcterms:modified")
}

func TestCoreProperties_SetCreated(t *testing.T) {
	props := &CoreProperties{}
	loc := time.FixedZone("UTC+2", 2*3600)
	props.SetCreated(time.Date(2024, 6, 1, 14, 0, 0, 0, loc))

	// stamps normalize to UTC in W3CDTF form
	assert.Equal(t, "2024-06-01T12:00:00Z", props.Created)
}
