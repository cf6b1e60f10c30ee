package http

import (
	"taskpilot/internal/timeline"
)

// --- Request DTOs ---

type geometryReq struct {
	HourHeightPx     float64 `json:"hour_height_px"`
	SnapMinutes      int     `json:"snap_minutes"`
	ViewportHeightPx float64 `json:"viewport_height_px"`
	EdgeZonePx       float64 `json:"edge_zone_px"`
	MaxScrollPx      float64 `json:"max_scroll_px"`
	ScrollTopPx      float64 `json:"scroll_top_px"`
}

func (r geometryReq) toGeometry() timeline.Geometry {
	return timeline.Geometry{
		HourHeightPx:     r.HourHeightPx,
		SnapMinutes:      r.SnapMinutes,
		ViewportHeightPx: r.ViewportHeightPx,
		EdgeZonePx:       r.EdgeZonePx,
		MaxScrollPx:      r.MaxScrollPx,
		ScrollTopPx:      r.ScrollTopPx,
	}
}

type startReq struct {
	TaskID    string      `json:"task_id" binding:"required"`
	StartTime string      `json:"start_time" binding:"required"`
	Geometry  geometryReq `json:"geometry"`
}

type moveReq struct {
	OffsetPx float64 `json:"offset_px"`
}

// --- Response DTOs ---

type dragResp struct {
	DragID      string `json:"drag_id"`
	WorkingTime string `json:"working_time"`
}

type finishResp struct {
	DragID        string `json:"drag_id"`
	CommittedTime string `json:"committed_time"`
}
