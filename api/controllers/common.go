package controllers

import (
	"net/http"

	"github.com/stylelane/stylelane-backend/api/responses"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type listEnvelope struct {
	Items      any    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func writeList(w http.ResponseWriter, items any, cursor pagination.Cursor) {
	responses.WriteSuccess(w, listEnvelope{Items: items, NextCursor: pagination.EncodeCursor(cursor)})
}
