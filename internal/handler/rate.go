package handler

import (
	"net/http"
	"time"

	"github.com/tripledger/tripledger/internal/domain"
)

// rateRequest is the JSON body of POST /rates and PUT /rates/{id}.
// Timestamp is optional; the service stamps now when it is omitted.
type rateRequest struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Rate      float64    `json:"rate"`
	Timestamp *time.Time `json:"timestamp"`
}

// ListRates handles GET /rates. Order is lookup precedence: conversion
// scans this sequence front to back and applies the first match.
func (s *Server) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := s.svcs.Rates.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse[domain.ExchangeRate]{Data: rates})
}

// CreateRate handles POST /rates. New rates apply only to expenses saved
// afterwards; nothing stored is recomputed.
func (s *Server) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.svcs.Rates.Create(r.Context(), requestToRate(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateRate handles PUT /rates/{id}.
func (s *Server) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req rateRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	rate := requestToRate(req)
	rate.ID = id
	updated, err := s.svcs.Rates.Update(r.Context(), rate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteRate handles DELETE /rates/{id}.
func (s *Server) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.svcs.Rates.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requestToRate(req rateRequest) domain.ExchangeRate {
	rate := domain.ExchangeRate{From: req.From, To: req.To, Rate: req.Rate}
	if req.Timestamp != nil {
		rate.Timestamp = *req.Timestamp
	}
	return rate
}
