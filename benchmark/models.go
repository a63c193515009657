package main

import "time"

type GenerateRequest struct {
	Format      string  `json:"format" example:"png"`
	Count       int     `json:"count" example:"10"`
	Width       int     `json:"width,omitempty" example:"800"`
	Height      int     `json:"height,omitempty" example:"600"`
	BgColor     string  `json:"bgColor,omitempty" example:"#ffffff"`
	TextColor   string  `json:"textColor,omitempty" example:"#000000"`
	BorderColor *string `json:"borderColor,omitempty" example:"#ff0000"`
}

type Case struct {
	Format string
	Count  int
}

type BenchResult struct {
	Format      string
	Count       int
	Duration    time.Duration
	ContentType string
	Err         error
	Size        int64
}

type Agg struct {
	Requests   int
	Files      int
	Total      time.Duration
	TotalBytes int64
}
