package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse - 공통 에러 응답 형식
type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}

// JSON - 응답 인코딩
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// Error - 에러 응답 인코딩
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{
		Success:      false,
		ErrorMessage: message,
		ErrorCode:    code,
	})
}
