package config

type ServerCfg struct {
	Database    Database
	Server      Server
	Nutritionix Nutritionix
}

type Database struct {
	Url string
}

type Server struct {
	Port      string
	Debug     bool
	JwtSecret string
}

type Nutritionix struct {
	AppId  string
	AppKey string
}
