package dto

type PointProperties struct {
	Forecast       string `json:"forecast"`
	ForecastHourly string `json:"forecastHourly"`
}

type PointsResponse struct {
	Properties PointProperties `json:"properties"`
}

type ForecastPeriod struct {
	Name            string `json:"name"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Temperature     int    `json:"temperature"`
	TemperatureUnit string `json:"temperatureUnit"`
	WindSpeed       string `json:"windSpeed"`
	WindDirection   string `json:"windDirection"`
	ShortForecast   string `json:"shortForecast"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}
