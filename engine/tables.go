package engine

import "attireapi/models"

// MeasurementRange is the accepted interval for one measurement, in the
// unit shown in the measurement guide.
type MeasurementRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// measurementFields fixes the reporting order of validation output.
var measurementFields = []string{
	"height", "weight", "bust", "underbust", "waist",
	"hips", "shoulder_width", "arm_length", "age",
}

var measurementRanges = map[string]MeasurementRange{
	"height":         {140, 200, "cm", "Standing height"},
	"weight":         {40, 120, "kg", "Body weight"},
	"bust":           {70, 120, "cm", "Fullest part of the bust"},
	"underbust":      {65, 110, "cm", "Directly under the bust"},
	"waist":          {50, 100, "cm", "Narrowest part of the torso"},
	"hips":           {70, 130, "cm", "Fullest part of the hips"},
	"shoulder_width": {30, 50, "cm", "Shoulder seam to shoulder seam"},
	"arm_length":     {50, 70, "cm", "Shoulder to wrist"},
	"age":            {16, 80, "years", "Age"},
}

var cupSizes = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// cupOffsets map a cup size to the bust-underbust difference its band
// represents, in cm.
var cupOffsets = map[string]float64{
	"A": 5, "B": 7.5, "C": 10, "D": 12.5,
	"E": 15, "F": 17.5, "G": 20, "H": 22.5,
}

const avgCupOffset = 10.0

const (
	targetBMI     = 21.0
	defaultHeight = 165.0
	defaultAge    = 30.0

	armLengthFraction = 0.35
)

type bodyRatios struct {
	WaistToHip       float64
	BustToHip        float64
	ShoulderFraction float64 // of height
}

var ratiosByBodyType = map[models.BodyType]bodyRatios{
	models.BodyTypeHourglass:        {0.75, 1.0, 0.23},
	models.BodyTypePear:             {0.72, 0.8, 0.22},
	models.BodyTypeApple:            {0.95, 1.0, 0.23},
	models.BodyTypeRectangle:        {0.85, 1.0, 0.23},
	models.BodyTypeInvertedTriangle: {0.75, 1.2, 0.245},
}

// eventFormality resolves a formality level when the caller omits one.
var eventFormality = map[string]int{
	"wedding":  8,
	"formal":   8,
	"business": 6,
	"party":    5,
	"casual":   3,
	"sports":   2,
	"travel":   2,
}

const defaultFormality = 3

var seasonMaterials = map[models.Season][]string{
	models.SeasonWinter: {"wool", "cashmere", "fleece", "velvet", "cotton", "silk", "synthetic"},
	models.SeasonSummer: {"cotton", "linen", "silk", "light", "bamboo", "modal", "synthetic"},
	models.SeasonSpring: {"cotton", "linen", "silk", "light", "synthetic", "bamboo", "modal"},
	models.SeasonFall:   {"wool", "cotton", "silk", "synthetic", "linen", "light", "bamboo", "modal"},
}

// legwearOptions lists the eligible legwear kinds per season and style.
// "none" is a real draw outcome meaning no legwear.
var legwearOptions = map[models.Season]map[models.StyleContext][]string{
	models.SeasonWinter: {
		models.StyleFormal:   {"stockings", "tights"},
		models.StyleBusiness: {"tights", "leggings"},
		models.StyleCasual:   {"tights", "leggings"},
	},
	models.SeasonFall: {
		models.StyleFormal:   {"stockings", "tights"},
		models.StyleBusiness: {"tights", "leggings"},
		models.StyleCasual:   {"leggings", "none"},
	},
	models.SeasonSpring: {
		models.StyleFormal:   {"stockings", "none"},
		models.StyleBusiness: {"none"},
		models.StyleCasual:   {"none"},
	},
	models.SeasonSummer: {
		models.StyleFormal:   {"stockings", "none"},
		models.StyleBusiness: {"none"},
		models.StyleCasual:   {"fishnets", "none"},
	},
}

var (
	shoeMaterials      = []string{"leather", "suede", "canvas", "synthetic"}
	legwearMaterials   = []string{"nylon", "cotton", "wool"}
	accessoryMaterials = []string{"leather", "metal", "pearl", "silk"}
)

var colorPalettes = map[models.StyleContext][]string{
	models.StyleFormal:   {"black", "navy", "burgundy", "emerald", "cream"},
	models.StyleBusiness: {"navy", "black", "gray", "white", "burgundy"},
	models.StyleCasual:   {"blue", "white", "gray", "black", "navy"},
}

var legwearColors = map[models.StyleContext][]string{
	models.StyleFormal:   {"black", "nude"},
	models.StyleBusiness: {"black", "nude", "gray"},
	models.StyleCasual:   {"black", "gray", "navy"},
}

var dressLengths = map[models.StyleContext][]string{
	models.StyleFormal:   {"midi", "maxi"},
	models.StyleBusiness: {"knee", "midi"},
	models.StyleCasual:   {"mini", "knee"},
}

var dressNecklines = map[models.StyleContext][]string{
	models.StyleFormal:   {"v-neck", "sweetheart", "off-shoulder"},
	models.StyleBusiness: {"crew", "v-neck", "boat"},
	models.StyleCasual:   {"crew", "scoop", "v-neck"},
}

var dressSleeves = map[models.StyleContext][]string{
	models.StyleFormal:   {"sleeveless", "long", "three-quarter"},
	models.StyleBusiness: {"short", "three-quarter", "long"},
	models.StyleCasual:   {"sleeveless", "short", "long"},
}

var garmentFits = map[models.StyleContext][]string{
	models.StyleFormal:   {"fitted", "a-line"},
	models.StyleBusiness: {"tailored", "straight"},
	models.StyleCasual:   {"relaxed", "regular", "fitted"},
}

var topTypes = map[models.StyleContext][]string{
	models.StyleFormal:   {"blouse", "silk top"},
	models.StyleBusiness: {"blouse", "shirt", "knit top"},
	models.StyleCasual:   {"t-shirt", "top", "sweater"},
}

var bottomTypes = map[models.StyleContext][]string{
	models.StyleFormal:   {"skirt", "palazzo pants"},
	models.StyleBusiness: {"trousers", "pencil skirt"},
	models.StyleCasual:   {"jeans", "shorts", "skirt"},
}

var bottomLengths = map[models.StyleContext][]string{
	models.StyleFormal:   {"full", "midi"},
	models.StyleBusiness: {"full", "knee"},
	models.StyleCasual:   {"full", "knee", "short"},
}

type shoeSpec struct {
	Type       string
	HeelHeight string
	Closure    string
	ToeShape   string
}

var shoeSpecs = map[models.StyleContext][]shoeSpec{
	models.StyleFormal: {
		{"pumps", "high", "slip-on", "pointed"},
		{"stilettos", "high", "slip-on", "pointed"},
		{"block heels", "medium", "ankle strap", "almond"},
	},
	models.StyleBusiness: {
		{"loafers", "flat", "slip-on", "round"},
		{"oxfords", "low", "laces", "round"},
		{"ballet flats", "flat", "slip-on", "almond"},
	},
	models.StyleCasual: {
		{"sneakers", "flat", "laces", "round"},
		{"flats", "flat", "slip-on", "round"},
	},
}

type accessorySpec struct {
	Type      string
	Placement string
}

var accessorySpecs = map[models.StyleContext][]accessorySpec{
	models.StyleFormal: {
		{"necklace", "neck"},
		{"earrings", "ears"},
		{"clutch", "hand"},
	},
	models.StyleBusiness: {
		{"watch", "wrist"},
		{"belt", "waist"},
		{"scarf", "neck"},
	},
	models.StyleCasual: {
		{"bracelet", "wrist"},
		{"hat", "head"},
		{"tote", "shoulder"},
	},
}
