package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_WriteProducts(t *testing.T) {
	exportService := NewExportService()
	products := testProducts()

	var buf bytes.Buffer
	require.NoError(t, exportService.WriteProducts(&buf, products))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, len(products)+1, "header plus one row per product")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, products[0].ID, rows[1][0])
	assert.Equal(t, products[0].Name, rows[1][1])
}

func TestExportService_WriteEmptySequence(t *testing.T) {
	exportService := NewExportService()

	var buf bytes.Buffer
	require.NoError(t, exportService.WriteProducts(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
