package blackhole

// ApodModel is the Astronomy Picture of the Day record, both as returned
// by the upstream endpoint and as stored in the pictures table.
type ApodModel struct {
	Date        string `json:"date" db:"date"`
	Title       string `json:"title" db:"title"`
	URL         string `json:"url" db:"url"`
	HDURL       string `json:"hdurl" db:"hd_url"`
	ThumbURL    string `json:"thumbnail_url" db:"thumbnail_url"`
	MediaType   string `json:"media_type" db:"media_type"`
	Copyright   string `json:"copyright" db:"copyright"`
	Explanation string `json:"explanation" db:"explanation"`
}

// MarsPhoto is a single rover photo as served to clients.
type MarsPhoto struct {
	ID             int    `json:"id"`
	ImgSrc         string `json:"img_src"`
	Camera         string `json:"camera"`
	CameraFullName string `json:"camera_full_name"`
	Rover          string `json:"rover"`
	Sol            int    `json:"sol"`
	EarthDate      string `json:"earth_date"`
}

// SearchItem is one image-library result. URL is the natural key,
// duplicates are dropped on merge.
type SearchItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EpicItem is one entry of the natural-color Earth feed. ImgSrc is not
// supplied upstream, it is derived from Date and Image.
type EpicItem struct {
	Identifier string `json:"identifier"`
	Caption    string `json:"caption"`
	Image      string `json:"image"`
	Date       string `json:"date"`
	ImgSrc     string `json:"img_src"`
}

// Camera is a rover camera with its upstream abbreviation.
type Camera struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

// Rover describes one mission: the cameras it carries and the last sol
// it has photos for. Sols outside [0, MaxSol] are clamped.
type Rover struct {
	Name    string   `json:"name"`
	MaxSol  int      `json:"max_sol"`
	Cameras []Camera `json:"cameras"`
}

// Rovers is the fixed mission catalog.
var Rovers = []Rover{
	{
		Name:   "curiosity",
		MaxSol: 4102,
		Cameras: []Camera{
			{Abbr: "FHAZ", Name: "Front Hazard Avoidance Camera"},
			{Abbr: "RHAZ", Name: "Rear Hazard Avoidance Camera"},
			{Abbr: "MAST", Name: "Mast Camera"},
			{Abbr: "CHEMCAM", Name: "Chemistry and Camera Complex"},
			{Abbr: "MAHLI", Name: "Mars Hand Lens Imager"},
			{Abbr: "MARDI", Name: "Mars Descent Imager"},
			{Abbr: "NAVCAM", Name: "Navigation Camera"},
		},
	},
	{
		Name:   "opportunity",
		MaxSol: 5111,
		Cameras: []Camera{
			{Abbr: "FHAZ", Name: "Front Hazard Avoidance Camera"},
			{Abbr: "RHAZ", Name: "Rear Hazard Avoidance Camera"},
			{Abbr: "NAVCAM", Name: "Navigation Camera"},
			{Abbr: "PANCAM", Name: "Panoramic Camera"},
			{Abbr: "MINITES", Name: "Miniature Thermal Emission Spectrometer"},
		},
	},
	{
		Name:   "spirit",
		MaxSol: 2208,
		Cameras: []Camera{
			{Abbr: "FHAZ", Name: "Front Hazard Avoidance Camera"},
			{Abbr: "RHAZ", Name: "Rear Hazard Avoidance Camera"},
			{Abbr: "NAVCAM", Name: "Navigation Camera"},
			{Abbr: "PANCAM", Name: "Panoramic Camera"},
			{Abbr: "MINITES", Name: "Miniature Thermal Emission Spectrometer"},
		},
	},
}

// FindRover returns the catalog entry for name, nil if unknown.
func FindRover(name string) *Rover {
	for i := range Rovers {
		if Rovers[i].Name == name {
			return &Rovers[i]
		}
	}
	return nil
}

// ClampSol keeps sol inside the rover's photographed range.
func (r *Rover) ClampSol(sol int) int {
	if sol < 0 {
		return 0
	}
	if sol > r.MaxSol {
		return r.MaxSol
	}
	return sol
}
