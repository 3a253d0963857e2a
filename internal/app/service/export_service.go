package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Products"

var exportHeader = []interface{}{
	"ID", "Name", "Category", "Brand", "Price", "Original Price",
	"Rating", "Reviews", "In Stock", "Tags", "Popularity",
}

// ExportService renders a product sequence as an xlsx workbook.
type ExportService interface {
	WriteProducts(w io.Writer, products []model.Product) error
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

func (s *exportService) WriteProducts(w io.Writer, products []model.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	for i, p := range products {
		originalPrice := ""
		if p.OriginalPrice != nil {
			originalPrice = fmt.Sprintf("%.2f", *p.OriginalPrice)
		}
		row := []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Brand,
			p.Price,
			originalPrice,
			p.Rating,
			p.ReviewCount,
			p.InStock,
			strings.Join(p.Tags, ", "),
			p.Popularity,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		logger.Error("Failed to write product export", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}

	logger.Info("Product export written", map[string]interface{}{
		"count": len(products),
	})
	return nil
}
