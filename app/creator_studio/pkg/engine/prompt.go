package engine

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

// 回复结构说明与语言无关，两种语言共用
const (
	fitSchema = `{"score": <integer 0-100>, "feedback": "<string>"}`

	kitSchema = `{
  "youtubeTitle": "<string>",
  "youtubeDescription": "<string>",
  "instagramCaption": "<string>",
  "tiktokCaption": "<string>",
  "tiktokScript": "<string>",
  "twitterPost": "<string>",
  "hashtags": ["<string>"],
  "keywords": ["<string>"],
  "launchStrategy": "<string>"
}`

	audienceSchema = `{
  "alerts": [{"title": "<string>", "message": "<string>", "type": "viral" | "timing" | "growth"}],
  "peakHour": "<string>",
  "bestRegion": "<string>",
  "engagementTips": ["<string>"]
}`

	scheduleSchema = `{"events": [{"day": "<string>", "platform": "YouTube" | "TikTok" | "Instagram" | "Spotify" | "Other", "action": "<string>", "recommendedTime": "<string>", "contentIdea": "<string>"}]}`

	cutsSchema = `{"suggestions": [{"timestamp": "<mm:ss>", "reason": "<string>", "hook": "<string>"}]}`

	distributionSchema = `{"formats": [{"platform": "<string>", "aspectRatio": "<string>", "maxDuration": "<string>", "optimizationNote": "<string>", "suggestedAction": "<string>"}]}`

	trendsSchema = `{
  "trendingTopics": [{"name": "<string>", "growth": "<string>"}],
  "trendingHashtags": ["<string>"],
  "bestPostingTimes": [{"platform": "<string>", "time": "<string>"}],
  "dailyContentSuggestions": [{"title": "<string>", "idea": "<string>"}]
}`

	videoAnalysisSchema = `{
  "score": <integer 0-10>,
  "viralPotential": "<string>",
  "verdict": "<string>",
  "positives": ["<string>"],
  "negatives": ["<string>"],
  "improvements": ["<string>"],
  "suggestions": ["<string>"]
}`
)

// templates 单个语言的全部提示词模板
type templates struct {
	directive     string
	jsonSystem    string
	pitch         string // author, title, category, style, link
	fit           string // description
	kit           string // title, author, category, style
	audience      string // title, link
	schedule      string // title, date
	cuts          string // description
	distribution  string // title
	trends        string
	thumbnail     string // prompt
	videoAnalysis string // mode, source, content
	linkContext   string // excerpt
	trendContext  string // headlines
	schemaIntro   string
}

var prompts = map[model.Locale]templates{
	model.LocaleEN: {
		directive:  "Respond in ENGLISH.",
		jsonSystem: "You are a JSON generator for a content-creator marketing studio. Output only valid JSON, with no markdown and no extra text.",
		pitch: "Write a professional pitch email presenting a creator's work to curators, channels and brands.\n" +
			"Author: %s\nTitle: %s\nCategory: %s\nStyle/tone: %s\nLink: %s\n" +
			"Keep it concise, personal and end with a clear call to action.",
		fit:           "Analyze how well this content fits an urban music and creator-culture curation channel. Give a score from 0 to 100 and short feedback.\nDescription: %s",
		kit:           "Create a complete promotion kit for \"%s\" by \"%s\" (category: %s, style: %s). Include YouTube title and description, Instagram and TikTok captions, a short TikTok script, an X/Twitter post, hashtags, SEO keywords and a launch strategy.",
		audience:      "Simulate an audience analysis for \"%s\" (link: %s). Provide actionable alerts tagged viral, timing or growth, the peak engagement hour, the best region and engagement tips.",
		schedule:      "Create a 10-day release schedule for \"%s\" launching on %s. Return the days in chronological order, one platform action per day with a recommended time and a content idea.",
		cuts:          "Suggest the best moments to cut into Shorts/TikTok/Reels clips for: %s. For each moment give the timestamp, why it works and an opening hook.",
		distribution:  "Prepare multichannel distribution settings for \"%s\": one entry per platform (YouTube, YouTube Shorts, TikTok, Instagram Reels, Spotify Canvas) with aspect ratio, maximum duration, an optimization note and a suggested action.",
		trends:        "Analyze the current trends in urban music and creator content (Trap, Rap, Drill, short-form video). Include trending topics with a growth indicator, hashtags, best posting times per platform and daily content ideas.",
		thumbnail:     "Find or compose a YouTube thumbnail image for: %s. Cinematic lighting, 16:9. Reply with a single direct image URL.",
		videoAnalysis: "You are a content strategist. Analyze this %s content (source: %s): %s\nRate it from 0 to 10, estimate its viral potential (High, Medium or Low), list strengths, weaknesses, what to improve, practical suggestions and a final verdict.",
		linkContext:   "Context extracted from the link:\n%s",
		trendContext:  "Recent headlines to ground the analysis:\n%s",
		schemaIntro:   "Reply with a JSON object with exactly these fields:",
	},
	model.LocalePT: {
		directive:  "Responda em PORTUGUÊS (Brasil).",
		jsonSystem: "Você é um gerador de JSON para um estúdio de marketing de criadores de conteúdo. Responda apenas com JSON válido, sem markdown e sem texto extra.",
		pitch: "Gere um e-mail de pitch profissional apresentando o trabalho de um criador para curadores, canais e marcas.\n" +
			"Autor: %s\nTítulo: %s\nCategoria: %s\nEstilo/tom: %s\nLink: %s\n" +
			"Seja conciso, pessoal e termine com uma chamada para ação clara.",
		fit:           "Analise o fit deste conteúdo com um canal de curadoria de música urbana e cultura de criadores. Dê uma nota de 0 a 100 e um feedback curto.\nDescrição: %s",
		kit:           "Crie um kit de divulgação completo para \"%s\" de \"%s\" (categoria: %s, estilo: %s). Inclua título e descrição para YouTube, legendas para Instagram e TikTok, um roteiro curto de TikTok, um post para X/Twitter, hashtags, palavras-chave de SEO e uma estratégia de lançamento.",
		audience:      "Simule uma análise de audiência para \"%s\" (link: %s). Traga alertas acionáveis marcados como viral, timing ou growth, o horário de pico de engajamento, a melhor região e dicas de engajamento.",
		schedule:      "Crie um cronograma de lançamento de 10 dias para \"%s\" com lançamento em %s. Retorne os dias em ordem cronológica, uma ação por plataforma por dia, com horário recomendado e ideia de conteúdo.",
		cuts:          "Sugira os melhores momentos para cortar em clipes de Shorts/TikTok/Reels para: %s. Para cada momento informe o timestamp, por que funciona e um gancho de abertura.",
		distribution:  "Prepare as configurações de distribuição multicanal para \"%s\": uma entrada por plataforma (YouTube, YouTube Shorts, TikTok, Instagram Reels, Spotify Canvas) com proporção de tela, duração máxima, uma nota de otimização e uma ação sugerida.",
		trends:        "Analise as tendências atuais da música urbana e do conteúdo de criadores (Trap, Rap, Drill, vídeos curtos). Inclua tópicos em alta com indicador de crescimento, hashtags, melhores horários de postagem por plataforma e ideias de conteúdo diárias.",
		thumbnail:     "Encontre ou componha uma thumbnail de YouTube para: %s. Iluminação cinematográfica, 16:9. Responda com uma única URL direta de imagem.",
		videoAnalysis: "Você é um estrategista de conteúdo. Analise este conteúdo do tipo %s (origem: %s): %s\nDê uma nota de 0 a 10, estime o potencial viral (Alto, Médio ou Baixo), liste pontos fortes, pontos fracos, o que melhorar, sugestões práticas e um veredito final.",
		linkContext:   "Contexto extraído do link:\n%s",
		trendContext:  "Manchetes recentes para embasar a análise:\n%s",
		schemaIntro:   "Responda com um objeto JSON contendo exatamente estes campos:",
	},
}

func templatesFor(locale model.Locale) templates {
	if t, ok := prompts[locale]; ok {
		return t
	}
	return prompts[model.LocaleEN]
}

// compose 拼接任务说明、可选上下文、回复结构与语言指令
func (t templates) compose(task, extra, schema string) string {
	var sb strings.Builder
	sb.WriteString(task)
	if extra != "" {
		sb.WriteString("\n\n")
		sb.WriteString(extra)
	}
	if schema != "" {
		fmt.Fprintf(&sb, "\n\n%s\n%s", t.schemaIntro, schema)
	}
	sb.WriteString("\n\n")
	sb.WriteString(t.directive)
	return sb.String()
}
