package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mamadbah2/procurement-mock/internal/domain/models"
)

const (
	OrdersSheet = "PurchaseOrders"
	ItemsSheet  = "LineItems"
)

var orderHeaders = []interface{}{
	"PurchaseOrderID", "CompanyCode", "DocCategory", "DocType", "Status", "CreatedDate",
	"CreatedBy", "LastModified", "SupplierID", "PurchasingOrg", "PurchasingGroup",
	"TotalValue", "Currency", "ItemCount",
}

var itemHeaders = []interface{}{
	"PurchaseOrderID", "ItemNumber", "ProductID", "Description", "Plant", "MaterialGroup",
	"Quantity", "Unit", "UnitPrice", "NetValue", "GrossValue", "EffectiveValue",
}

// WriteXLSX renders orders into a workbook with one header sheet and one line item
// sheet, then writes it to w.
func WriteXLSX(w io.Writer, orders []models.PurchaseOrder) error {
	f, err := Workbook(orders)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Workbook builds the in-memory workbook. Callers own the returned file.
func Workbook(orders []models.PurchaseOrder) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fill(f, orders); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, orders []models.PurchaseOrder) error {
	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", ItemsSheet, err)
	}

	if err := setRow(f, OrdersSheet, 1, orderHeaders); err != nil {
		return err
	}
	if err := setRow(f, ItemsSheet, 1, itemHeaders); err != nil {
		return err
	}

	itemRow := 2
	for i, po := range orders {
		row := []interface{}{
			po.PurchaseOrderID, po.CompanyCode, po.DocCategory, po.DocType, string(po.Status),
			po.CreatedDate, po.CreatedBy, po.LastModified, po.SupplierID, po.PurchasingOrg,
			po.PurchasingGroup, po.TotalValue, po.Currency, len(po.Items),
		}
		if err := setRow(f, OrdersSheet, i+2, row); err != nil {
			return err
		}

		for _, item := range po.Items {
			row := []interface{}{
				po.PurchaseOrderID, item.ItemNumber, item.ProductID, item.Description, item.Plant,
				item.MaterialGroup, item.Quantity, item.Unit, item.UnitPrice, item.NetValue,
				item.GrossValue, item.EffectiveValue,
			}
			if err := setRow(f, ItemsSheet, itemRow, row); err != nil {
				return err
			}
			itemRow++
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolve cell for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
