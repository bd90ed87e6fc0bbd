package consts

const (
	ParamRover  = "rover"
	ParamCamera = "camera"
	ParamSol    = "sol"
	ParamQuery  = "q"

	ParamDate      = "date"
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"

	ParamThumbs = "thumbs"
	ParamApiKey = "api_key"
	ParamMedia  = "media_type"

	TimeFormat     = "2006-01-02"
	EpicTimeFormat = "2006-01-02 15:04:05"

	Token   = "NASA_API_KEY"
	DemoKey = "DEMO_KEY"

	ApodURL    = "https://api.nasa.gov/planetary/apod"
	MarsURL    = "https://api.nasa.gov/mars-photos/api/v1/rovers"
	EpicURL    = "https://api.nasa.gov/EPIC/api/natural"
	EpicImgURL = "https://api.nasa.gov/EPIC/archive/natural"
	SearchURL  = "https://images-api.nasa.gov/search"

	MediaImage = "image"
	MediaVideo = "video"

	True = "true"

	// DisplayCount caps the merged surprise-me set.
	DisplayCount = 12

	// SurpriseCount is how many topics a surprise-me roll samples.
	SurpriseCount = 3
)

// SurpriseTopicPool holds the candidate search topics for surprise-me.
var SurpriseTopicPool = []string{
	"mars", "moon", "jupiter", "saturn", "nebula",
	"galaxy", "supernova", "earth", "aurora", "comet",
}
