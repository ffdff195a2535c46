// Package spreadsheet serializes filtered lending views into xlsx workbooks
// with excelize.
package spreadsheet
