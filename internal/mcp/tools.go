// ABOUTME: MCP tool implementations for setup sheets.
// ABOUTME: Provides CRUD operations plus the setup advisor.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/setuplog/internal/advisor"
	"github.com/harperreed/setuplog/internal/metrics"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/harperreed/setuplog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_sheets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sheets",
		Description: "List recent setup sheets, optionally filtered by vehicle or track",
	}, s.handleListSheets)

	// get_sheet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_sheet",
		Description: "Get a full setup sheet by ID or ID fragment",
	}, s.handleGetSheet)

	// create_sheet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_sheet",
		Description: "Create a new setup sheet from the blank template",
	}, s.handleCreateSheet)

	// copy_sheet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "copy_sheet",
		Description: "Create a new setup sheet as a copy of an existing one",
	}, s.handleCopySheet)

	// update_sheet_field
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_sheet_field",
		Description: "Update one field of a setup sheet by dot-delimited path (e.g. environment.airTemp, setupBefore.tires.pressure.fl)",
	}, s.handleUpdateSheetField)

	// delete_sheet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_sheet",
		Description: "Delete a setup sheet by ID or ID fragment",
	}, s.handleDeleteSheet)

	// get_advice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_advice",
		Description: "Get setup advice and fleet insights for a sheet",
	}, s.handleGetAdvice)
}

// Tool input/output types

type listSheetsInput struct {
	Vehicle string `json:"vehicle,omitempty" jsonschema:"Filter by vehicle name"`
	Track   string `json:"track,omitempty" jsonschema:"Filter by track name"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type sheetSummary struct {
	ID             string  `json:"id"`
	DateTime       string  `json:"date_time"`
	Vehicle        string  `json:"vehicle"`
	TrackName      string  `json:"track_name"`
	SessionType    string  `json:"session_type,omitempty"`
	Driver         string  `json:"driver,omitempty"`
	AvgColdKPa     float64 `json:"avg_cold_pressure_kpa"`
	AvgHotKPa      float64 `json:"avg_hot_pressure_kpa"`
	Classification string  `json:"balance_classification"`
}

type listSheetsOutput struct {
	Sheets []sheetSummary `json:"sheets"`
}

type getSheetInput struct {
	ID string `json:"id" jsonschema:"Sheet ID or unique ID fragment"`
}

type sheetOutput struct {
	Sheet *models.SetupSheet `json:"sheet"`
}

type createSheetInput struct {
	Vehicle     string `json:"vehicle,omitempty" jsonschema:"Vehicle name (Roadster or RS3 LMS TCR)"`
	Track       string `json:"track,omitempty" jsonschema:"Track name"`
	Driver      string `json:"driver,omitempty" jsonschema:"Driver name"`
	SessionType string `json:"session_type,omitempty" jsonschema:"Session type (e.g. Practice 1)"`
}

type createdSheetOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type copySheetInput struct {
	ID string `json:"id" jsonschema:"ID or unique ID fragment of the sheet to copy"`
}

type updateSheetFieldInput struct {
	ID    string `json:"id" jsonschema:"Sheet ID or unique ID fragment"`
	Path  string `json:"path" jsonschema:"Dot-delimited field path"`
	Value string `json:"value" jsonschema:"Raw value; numeric fields coerce and empty clears"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type adviceOutput struct {
	Advice   string   `json:"advice"`
	Insights []string `json:"insights,omitempty"`
}

// Tool handlers

func summarize(s *models.SetupSheet) sheetSummary {
	return sheetSummary{
		ID:             s.ID,
		DateTime:       s.DateTime,
		Vehicle:        s.Vehicle,
		TrackName:      s.TrackName,
		SessionType:    s.SessionType,
		Driver:         s.Driver,
		AvgColdKPa:     metrics.AveragePressure(&s.SetupBefore.Tires.Pressure),
		AvgHotKPa:      metrics.AveragePressure(&s.SetupAfter.Tires.Pressure),
		Classification: string(metrics.CornerBalanceSummary(s.DriverNotes.CornerBalance).Classification),
	}
}

func (s *Server) handleListSheets(ctx context.Context, req *mcp.CallToolRequest, input listSheetsInput) (*mcp.CallToolResult, listSheetsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	sheets, err := s.repo.ListSheets(s.filterFor(input.Vehicle, input.Track), limit)
	if err != nil {
		return nil, listSheetsOutput{}, fmt.Errorf("failed to list sheets: %w", err)
	}

	out := listSheetsOutput{Sheets: []sheetSummary{}}
	for _, sheet := range sheets {
		out.Sheets = append(out.Sheets, summarize(sheet))
	}
	return nil, out, nil
}

func (s *Server) handleGetSheet(ctx context.Context, req *mcp.CallToolRequest, input getSheetInput) (*mcp.CallToolResult, sheetOutput, error) {
	sheet, err := s.repo.GetSheet(input.ID)
	if err != nil {
		return nil, sheetOutput{}, fmt.Errorf("sheet not found: %s", input.ID)
	}
	return nil, sheetOutput{Sheet: sheet}, nil
}

func (s *Server) handleCreateSheet(ctx context.Context, req *mcp.CallToolRequest, input createSheetInput) (*mcp.CallToolResult, createdSheetOutput, error) {
	sheet := models.NewSheet(nil)
	if input.Vehicle != "" {
		if !models.IsValidVehicle(input.Vehicle) {
			return nil, createdSheetOutput{}, fmt.Errorf("unknown vehicle: %s", input.Vehicle)
		}
		sheet.Vehicle = input.Vehicle
	}
	if input.Track != "" {
		sheet.TrackName = input.Track
	}
	sheet.Driver = input.Driver
	if input.SessionType != "" {
		sheet.SessionType = input.SessionType
	}

	if err := s.repo.SaveSheet(sheet); err != nil {
		return nil, createdSheetOutput{}, fmt.Errorf("failed to create sheet: %w", err)
	}
	return nil, createdSheetOutput{ID: sheet.ID, Message: fmt.Sprintf("Created sheet %s", sheet.ID)}, nil
}

func (s *Server) handleCopySheet(ctx context.Context, req *mcp.CallToolRequest, input copySheetInput) (*mcp.CallToolResult, createdSheetOutput, error) {
	base, err := s.repo.GetSheet(input.ID)
	if err != nil {
		return nil, createdSheetOutput{}, fmt.Errorf("sheet not found: %s", input.ID)
	}

	sheet := models.NewSheet(base)
	if err := s.repo.SaveSheet(sheet); err != nil {
		return nil, createdSheetOutput{}, fmt.Errorf("failed to copy sheet: %w", err)
	}
	return nil, createdSheetOutput{ID: sheet.ID, Message: fmt.Sprintf("Copied %s to %s", base.ID, sheet.ID)}, nil
}

func (s *Server) handleUpdateSheetField(ctx context.Context, req *mcp.CallToolRequest, input updateSheetFieldInput) (*mcp.CallToolResult, simpleOutput, error) {
	sheet, err := s.repo.GetSheet(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("sheet not found: %s", input.ID)
	}

	if err := sheet.SetField(input.Path, input.Value); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.SaveSheet(sheet); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save sheet: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Updated %s on %s", input.Path, sheet.ID)}, nil
}

func (s *Server) handleDeleteSheet(ctx context.Context, req *mcp.CallToolRequest, input getSheetInput) (*mcp.CallToolResult, simpleOutput, error) {
	sheet, err := s.repo.GetSheet(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("sheet not found: %s", input.ID)
	}
	if err := s.repo.DeleteSheet(sheet.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete sheet: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted sheet %s", sheet.ID)}, nil
}

func (s *Server) handleGetAdvice(ctx context.Context, req *mcp.CallToolRequest, input getSheetInput) (*mcp.CallToolResult, adviceOutput, error) {
	sheet, err := s.repo.GetSheet(input.ID)
	if err != nil {
		return nil, adviceOutput{}, fmt.Errorf("sheet not found: %s", input.ID)
	}

	all, err := s.repo.ListSheets(nil, 0)
	if err != nil {
		return nil, adviceOutput{}, fmt.Errorf("failed to list sheets: %w", err)
	}

	out := adviceOutput{Advice: advisor.Advice(sheet)}
	for _, insight := range advisor.Insights(all) {
		out.Insights = append(out.Insights, insight.Message)
	}
	return nil, out, nil
}

func (s *Server) filterFor(vehicle, track string) *storage.SheetFilter {
	if vehicle == "" && track == "" {
		return nil
	}
	return &storage.SheetFilter{Vehicle: vehicle, TrackName: track}
}
