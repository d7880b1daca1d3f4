package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/fatih/color"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type Data struct {
	Timestamp string                              `json:"timestamp"`
	Version   string                              `json:"version"`
	Comment   string                              `json:"comment"`
	Columns   map[string][]string                 `json:"columns"`
	Tables    map[string][]map[string]interface{} `json:"tables"`
}

// PerformExport dumps every catalog table present in the store. Other tables
// are left out. It returns the written file or directory.
func PerformExport(ctx context.Context, adapter database.DatabaseAdapter, exportPath, format string) (string, error) {
	if format != FormatJSON && format != FormatCSV {
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	present, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get table names: %w", err)
	}
	have := make(map[string]bool, len(present))
	for _, name := range present {
		have[name] = true
	}

	data := Data{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Comment:   "practicedb fixture export",
		Columns:   make(map[string][]string),
		Tables:    make(map[string][]map[string]interface{}),
	}

	for _, table := range schema.Catalog() {
		if !have[table.Name] {
			continue
		}
		rows, err := adapter.GetTableData(ctx, table.Name)
		if err != nil {
			return "", fmt.Errorf("failed to get data for table %s: %w", table.Name, err)
		}
		data.Columns[table.Name] = table.ColumnNames()
		data.Tables[table.Name] = rows
	}

	if len(data.Tables) == 0 {
		color.Yellow("⚠️  No fixture tables found in database")
		return "", nil
	}

	if format == FormatCSV {
		return exportToCSV(data, exportPath)
	}
	return exportToJSON(data, exportPath)
}

func exportToJSON(data Data, exportPath string) (string, error) {
	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filePath := filepath.Join(exportPath, fmt.Sprintf("export_%s.json", timestamp))

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

// exportToCSV writes one file per table with columns in catalog order. NULL
// becomes an empty field.
func exportToCSV(data Data, exportPath string) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	dirPath := filepath.Join(exportPath, fmt.Sprintf("export_%s_csv", timestamp))

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create CSV directory: %w", err)
	}

	for tableName, rows := range data.Tables {
		if err := writeCSV(filepath.Join(dirPath, tableName+".csv"), data.Columns[tableName], rows); err != nil {
			return "", fmt.Errorf("failed to write CSV for %s: %w", tableName, err)
		}
	}

	return dirPath, nil
}

func writeCSV(path string, headers []string, rows []map[string]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return err
	}

	values := make([]string, len(headers))
	for _, row := range rows {
		for i, header := range headers {
			if v := row[header]; v != nil {
				values[i] = fmt.Sprintf("%v", v)
			} else {
				values[i] = ""
			}
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
