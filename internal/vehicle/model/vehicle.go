package model

import "errors"

var ErrNotFound = errors.New("vehicle not found")

type Vehicle struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
