package models

// SizePreset is a named canvas size offered by the generator UI.
type SizePreset struct {
	Name   string `json:"name" example:"フルHD (1920x1080)"`
	Width  int    `json:"width" example:"1920"`
	Height int    `json:"height" example:"1080"`
}

var sizePresets = []SizePreset{
	{Name: "バナー (468x60)", Width: 468, Height: 60},
	{Name: "スマホバナー (320x50)", Width: 320, Height: 50},
	{Name: "リーダーボード (728x90)", Width: 728, Height: 90},
	{Name: "インラインレクタングル (300x250)", Width: 300, Height: 250},
	{Name: "スカイスクレイパー (120x600)", Width: 120, Height: 600},
	{Name: "HD (1280x720)", Width: 1280, Height: 720},
	{Name: "フルHD (1920x1080)", Width: 1920, Height: 1080},
	{Name: "スマホ向け縦長 (1080x1920)", Width: 1080, Height: 1920},
	{Name: "OGP画像 (1200x630)", Width: 1200, Height: 630},
}

// SizePresets returns a copy of the preset list.
func SizePresets() []SizePreset {
	out := make([]SizePreset, len(sizePresets))
	copy(out, sizePresets)
	return out
}
