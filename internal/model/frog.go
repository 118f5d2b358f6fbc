package model

import "strings"

// Frog describes one species shown in the quiz
type Frog struct {
	ID      string `json:"id"`
	Name    string `json:"name"`    // may contain a line break for tile labels
	Species string `json:"species"` // scientific name
	Photo   string `json:"photo"`   // asset path of the photo
	Video   string `json:"video"`   // asset path of the call spectrogram video
	Preview string `json:"preview"` // asset path of the spectrogram preview frame
}

// DisplayName returns the name on a single line
func (f Frog) DisplayName() string {
	return strings.Join(strings.Fields(f.Name), " ")
}

// Assets returns every asset path referenced by the frog
func (f Frog) Assets() []string {
	return []string{f.Photo, f.Video, f.Preview}
}

// frogs is the static species list, in home grid order
var frogs = []Frog{
	{ID: "ggf", Name: "Growling Grass\nFrog", Species: "Ranoidea (nee Litoria) raniformis",
		Photo: "assets/GGF.png", Video: "assets/GGF_resized.mp4", Preview: "assets/GGF_spec_safe3_preview.jpg"},
	{ID: "sbtf", Name: "Southern Brown\nTree Frog", Species: "Litoria ewingii",
		Photo: "assets/SBTF.png", Video: "assets/SBTF_resized.mp4", Preview: "assets/SBTF_spec_safe3_preview.jpg"},
	{ID: "ptf", Name: "Peron's Tree\nFrog", Species: "Litoria peronii",
		Photo: "assets/PTF.png", Video: "assets/PTF_resized.mp4", Preview: "assets/PTF_spec_safe3_preview.jpg"},
	{ID: "pbf", Name: "Pobblebonk\nFrog", Species: "Limnodynastes dumerili",
		Photo: "assets/PBF.png", Video: "assets/PBF_resized.mp4", Preview: "assets/PBF_spec_safe3_preview.jpg"},
	{ID: "cf", Name: "Common\nFroglet", Species: "Crinia signifera",
		Photo: "assets/CF.png", Video: "assets/CF_resized.mp4", Preview: "assets/CF_spec_safe3_preview.jpg"},
	{ID: "csft", Name: "Common Spadefoot\nToad", Species: "Neobatrachus sudelli",
		Photo: "assets/CSFT.png", Video: "assets/CSFT_resized.mp4", Preview: "assets/CSFT_spec_safe3_preview.jpg"},
	{ID: "esbf", Name: "Eastern Sign-bearing\nFroglet", Species: "Geocrinia victoriana",
		Photo: "assets/ESBF.png", Video: "assets/ESBF_resized.mp4", Preview: "assets/ESBF_spec_safe3_preview.jpg"},
	{ID: "smf", Name: "Spotted Marsh\nFrog", Species: "Limnodynastes tasmaniensis",
		Photo: "assets/SMF.png", Video: "assets/SMF_resized.mp4", Preview: "assets/SMF_spec_safe3_preview.jpg"},
}

// Frogs returns a copy of the frog dataset
func Frogs() []Frog {
	return append([]Frog(nil), frogs...)
}

// FindFrog returns the frog with the given ID
func FindFrog(id string) (Frog, bool) {
	for _, f := range frogs {
		if f.ID == id {
			return f, true
		}
	}
	return Frog{}, false
}
