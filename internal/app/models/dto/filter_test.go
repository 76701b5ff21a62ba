package dto

import (
	"encoding/json"
	"testing"
)

func TestFilterIDUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantInvalid bool
		wantID      int64
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"yearId": null}`},
		{name: "all sentinel", body: `{"yearId": "all"}`},
		{name: "all sentinel any case", body: `{"yearId": "ALL"}`},
		{name: "empty string", body: `{"yearId": ""}`},
		{name: "number", body: `{"yearId": 4}`, wantPresent: true, wantID: 4},
		{name: "numeric string", body: `{"yearId": "12"}`, wantPresent: true, wantID: 12},
		{name: "malformed string", body: `{"yearId": "first"}`, wantPresent: true, wantInvalid: true},
		{name: "fractional number", body: `{"yearId": 1.5}`, wantPresent: true, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				YearID FilterID `json:"yearId"`
			}
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			got := req.YearID
			if got.Present != tt.wantPresent || got.Invalid != tt.wantInvalid || got.ID != tt.wantID {
				t.Errorf("got %+v, want present=%v invalid=%v id=%d", got.IDFilter, tt.wantPresent, tt.wantInvalid, tt.wantID)
			}
		})
	}
}
