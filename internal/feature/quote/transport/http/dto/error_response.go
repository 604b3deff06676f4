// Package dto はquoteフィーチャーのレスポンスDTOを定義します。
package dto

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
