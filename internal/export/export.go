// Package export produit des extractions analytiques de l'artefact généré:
// ventes dénormalisées en Parquet et statistiques agrégées en CSV.
package export

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"zavagen/database"
	"zavagen/internal/analytics"
	"zavagen/internal/shared/domain"
)

// Service expose les exports. Lecture seule sur la base.
type Service struct {
	db *sql.DB
}

// NewService crée un Service d'export.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

const salesQuery = `
	SELECT o.order_date, o.order_id, p.sku, p.product_name,
	       c.first_name || ' ' || c.last_name,
	       s.store_name, oi.quantity, oi.unit_price, oi.discount_amount, oi.total_amount
	FROM order_items oi
	JOIN orders o ON o.order_id = oi.order_id
	JOIN products p ON p.product_id = oi.product_id
	JOIN customers c ON c.customer_id = o.customer_id
	JOIN stores s ON s.store_id = oi.store_id
	WHERE o.order_date >= ? AND o.order_date <= ?
	ORDER BY o.order_date, o.order_id, oi.order_item_id`

// salesData relit les lignes de vente dénormalisées sur la période.
func (s *Service) salesData(days int) ([]database.SaleParquet, error) {
	dateRange, err := domain.NewDateRangeFromDays(days)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(salesQuery,
		dateRange.Start().Format("2006-01-02"),
		dateRange.End().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("erreur requête ventes: %w", err)
	}
	defer rows.Close()

	var sales []database.SaleParquet
	for rows.Next() {
		var sp database.SaleParquet
		err := rows.Scan(&sp.OrderDate, &sp.OrderID, &sp.SKU, &sp.ProductName,
			&sp.CustomerName, &sp.StoreName, &sp.Quantity, &sp.UnitPrice,
			&sp.Discount, &sp.TotalAmount)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sp)
	}
	return sales, rows.Err()
}

// ExportSalesParquet écrit les ventes de la période dans un fichier Parquet
// compressé en Snappy. Retourne le nombre de lignes écrites.
func (s *Service) ExportSalesParquet(path string, days int) (int, error) {
	sales, err := s.salesData(days)
	if err != nil {
		return 0, err
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, fmt.Errorf("erreur création fichier parquet: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(database.SaleParquet), 4)
	if err != nil {
		fw.Close()
		return 0, fmt.Errorf("erreur création writer parquet: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range sales {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return 0, fmt.Errorf("erreur écriture ligne parquet: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return 0, fmt.Errorf("erreur finalisation parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}

	return len(sales), nil
}

// csvHeaders liste les colonnes de l'export CSV des ventes.
func csvHeaders() []string {
	return []string{"order_date", "order_id", "sku", "product_name",
		"customer_name", "store_name", "quantity", "unit_price",
		"discount_amount", "total_amount"}
}

// ExportSalesCSV génère un CSV en mémoire contenant les ventes de la période.
func (s *Service) ExportSalesCSV(days int) ([]byte, error) {
	sales, err := s.salesData(days)
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 1024*1024))
	w := csv.NewWriter(buffer)

	if err := w.Write(csvHeaders()); err != nil {
		return nil, err
	}
	for _, row := range sales {
		record := []string{
			row.OrderDate,
			strconv.FormatInt(row.OrderID, 10),
			row.SKU,
			row.ProductName,
			row.CustomerName,
			row.StoreName,
			strconv.Itoa(int(row.Quantity)),
			strconv.FormatFloat(row.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(row.Discount, 'f', 2, 64),
			strconv.FormatFloat(row.TotalAmount, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ExportStatsCSV génère un CSV en mémoire des comptages par table.
func (s *Service) ExportStatsCSV() ([]byte, error) {
	reporter := analytics.NewReporter(s.db)
	counts, err := reporter.TableCounts()
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 4096))
	w := csv.NewWriter(buffer)

	if err := w.Write([]string{"table", "rows"}); err != nil {
		return nil, err
	}
	for _, tc := range counts {
		if err := w.Write([]string{tc.Table, strconv.FormatInt(tc.Count, 10)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
