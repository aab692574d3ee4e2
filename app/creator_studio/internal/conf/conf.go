package conf

type Bootstrap struct {
	Server *Server `json:"server"`
	Auth   *Auth   `json:"auth"`
	Studio *Studio `json:"studio"`
}

type Auth struct {
	JwtKey string `json:"jwt_key"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Studio struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	Enrich      *Enrich      `json:"enrich"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type LLM struct {
	Provider       string  `json:"provider"`
	BaseUrl        string  `json:"base_url"`
	ApiKey         string  `json:"api_key"`
	StrategicModel string  `json:"strategic_model"`
	EfficientModel string  `json:"efficient_model"`
	Temperature    float32 `json:"temperature"`
	Timeout        string  `json:"timeout"`
}

type Search struct {
	Provider   string   `json:"provider"`
	TrendQuery string   `json:"trend_query"`
	Tavily     *Tavily  `json:"tavily"`
	Searxng    *SearXNG `json:"searxng"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Enrich struct {
	FetchLinks   bool   `json:"fetch_links"`
	FetchTimeout string `json:"fetch_timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
