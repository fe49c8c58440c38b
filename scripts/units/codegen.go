package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type category struct {
	ID          string
	Name        string
	BaseUnit    string
	Description string
	DefaultFrom string
	DefaultTo   string
}

type unit struct {
	ID       string
	Category string
	Name     string
	Symbol   string
	Aliases  []string
	Factor   string
	Offset   string
}

type catalog struct {
	Categories []category
	Units      []unit
}

func main() {
	// Read categories and units, keeping their declaration order
	catRecs, err := readCsvFile(filepath.Join("scripts", "units", "categories.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading categories: %v", err))
	}
	unitRecs, err := readCsvFile(filepath.Join("scripts", "units", "units.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading units: %v", err))
	}

	cat := catalog{
		Categories: convertDataToCategories(catRecs),
		Units:      convertDataToUnits(unitRecs),
	}

	// Generate Go code from the catalog using a template
	code, err := generateGoCode(filepath.Join("scripts", "units", "unit_data.tmpl"), cat)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCategories(data [][]string) []category {
	cats := []category{}
	for _, rec := range data {
		cats = append(cats, category{
			ID:          rec[0],
			Name:        rec[1],
			BaseUnit:    rec[2],
			Description: rec[3],
			DefaultFrom: rec[4],
			DefaultTo:   rec[5],
		})
	}
	return cats
}

func convertDataToUnits(data [][]string) []unit {
	units := []unit{}
	for _, rec := range data {
		u := unit{
			ID:       rec[0],
			Category: rec[1],
			Name:     rec[2],
			Symbol:   rec[3],
			Factor:   rec[5],
			Offset:   rec[6],
		}
		// Aliases are separated by vertical bars
		if rec[4] != "" {
			u.Aliases = strings.Split(rec[4], "|")
		}
		units = append(units, u)
	}
	return units
}

func generateGoCode(filename string, cat catalog) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, cat)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
