package models

type Top struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Material string `json:"material"`
	Fit      string `json:"fit"`
}

type Bottom struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Material string `json:"material"`
	Fit      string `json:"fit"`
	Length   string `json:"length"`
}

type Dress struct {
	Type       string `json:"type"`
	Color      string `json:"color"`
	Material   string `json:"material"`
	Fit        string `json:"fit"`
	Length     string `json:"length"`
	Neckline   string `json:"neckline"`
	SleeveType string `json:"sleeve_type"`
}

type Legwear struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Material string `json:"material"`
}

type Shoes struct {
	Type       string `json:"type"`
	Color      string `json:"color"`
	Material   string `json:"material"`
	HeelHeight string `json:"heel_height"`
	Closure    string `json:"closure"`
	ToeShape   string `json:"toe_shape"`
}

type Accessory struct {
	Type      string `json:"type"`
	Color     string `json:"color"`
	Material  string `json:"material"`
	Placement string `json:"placement"`
}

// Outfit is one assembled recommendation. Exactly one of Dress or the
// Top+Bottom pair is set; Shoes is always set.
type Outfit struct {
	Top         *Top         `json:"top,omitempty"`
	Bottom      *Bottom      `json:"bottom,omitempty"`
	Dress       *Dress       `json:"dress,omitempty"`
	Legwear     *Legwear     `json:"legwear,omitempty"`
	Shoes       *Shoes       `json:"shoes"`
	Accessories []Accessory  `json:"accessories"`
	Style       StyleContext `json:"style"`
	Season      Season       `json:"season"`
	Formality   int          `json:"formality"`
	Comfort     int          `json:"comfort_level"`
	Colors      []string     `json:"colors"`
	Materials   []string     `json:"materials"`
	SuitableFor []string     `json:"suitable_for"`
}

// HasDress reports which garment variant the outfit carries.
func (o *Outfit) HasDress() bool {
	return o.Dress != nil
}
