package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/scoring"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var errGeminiNotConfigured = errors.New("gemini client not initialized")

// ReportGenerator turns a scored assessment into narrative report text.
type ReportGenerator interface {
	Generate(ctx context.Context, assessment *model.Assessment) (string, error)
}

type geminiReportService struct {
	model *genai.GenerativeModel
}

// NewGeminiReportService builds the Gemini-backed generator. Without an API key the
// service is still returned but every call fails, so callers degrade to the fallback text.
func NewGeminiReportService(cfg *config.Config) (ReportGenerator, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Narrative reports will use the fallback message.")
		return &geminiReportService{}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel(cfg.Gemini.Model)
	m.SetTemperature(0.7)
	return &geminiReportService{model: m}, nil
}

func (s *geminiReportService) Generate(ctx context.Context, a *model.Assessment) (string, error) {
	if s.model == nil {
		return "", errGeminiNotConfigured
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildReportPrompt(a)))
	if err != nil {
		log.Error().Err(err).Str("assessmentID", a.ID).Msg("Gemini API error during report generation")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := cleanReport(responseText(resp))
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

// cleanReport strips markdown code fences the model sometimes wraps its answer in.
func cleanReport(raw string) string {
	raw = strings.ReplaceAll(raw, "```markdown", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func buildReportPrompt(a *model.Assessment) string {
	sq := scoring.ClassifySubQuadrant(a.AxisX, a.AxisY)

	var b strings.Builder
	b.WriteString("You are a senior HR consultant specialised in Teal organisations, self-management and organisational psychometrics.\n")
	fmt.Fprintf(&b, "Analyse the Person-Organization Fit results for %s.\n\n", a.Name)

	b.WriteString("### METHODOLOGICAL CONTEXT\n")
	b.WriteString("The analysis uses an orthogonal matrix (X axis: management style | Y axis: work dynamics).\n")
	b.WriteString("Respondents are placed in 8 sub-quadrants based on the distance of their scores from the centre (3.0):\n")
	b.WriteString("- High self-management + team: Governance Facilitator (extreme) or Team Collaborator (balanced).\n")
	b.WriteString("- High self-management + individual: Internal Entrepreneur (extreme) or Focused Specialist (balanced).\n")
	b.WriteString("- Traditional management + team: Climate Harmonizer (extreme) or Operational Leader (balanced).\n")
	b.WriteString("- Traditional management + individual: Norm Guardian (extreme) or Process Specialist (balanced).\n\n")

	b.WriteString("### DIAGNOSTIC INPUTS\n")
	fmt.Fprintf(&b, "1. IPA (Readiness for Autonomy): %.1f/5.0. Blocks B1 Authority, B4 Discipline, B10 Initiative.\n", a.IPA)
	b.WriteString("   > 4.0 self-directed individual with intrinsic motivation; < 3.0 depends on external structure.\n")
	fmt.Fprintf(&b, "2. IRCC (Resilience and Cognitive Load): %.1f/5.0. Blocks B6 Ambiguity, B7 Stability, B8 Consensus.\n", a.IRCC)
	b.WriteString("   > 4.0 stability in chaos; < 3.0 vulnerable to stress caused by ambiguity.\n")
	fmt.Fprintf(&b, "3. IISE (Social and Ethical Intelligence): %.1f/5.0. Blocks B3 Amiability, B5 Transparency, B9 Coordination.\n", a.IISE)
	b.WriteString("   > 4.0 cultural connector and promoter of radical trust; < 3.0 silo profile or strategic information retention.\n")
	b.WriteString("4. STRUCTURAL ALLOCATION:\n")
	fmt.Fprintf(&b, "   - X axis (management): %.1f (traditional < 3.0 <= self-management)\n", a.AxisX)
	fmt.Fprintf(&b, "   - Y axis (work): %.1f (individual < 3.0 <= team)\n", a.AxisY)
	fmt.Fprintf(&b, "   - Classification: %s\n", a.Classification)
	fmt.Fprintf(&b, "   - Sub-quadrant: %s\n", sq.Label)
	b.WriteString("5. BLOCK SCORES (1.0 to 5.0):\n")
	for _, bs := range a.BlockScores.Data().Ordered() {
		fmt.Fprintf(&b, "   - %s %s: %.2f\n", bs.Code, bs.Name, bs.Score)
	}

	b.WriteString("\n### FORMAT (Markdown, exactly 4 sections)\n")
	b.WriteString("### 1. EXECUTIVE SUMMARY AND PLACE OF POWER\n")
	b.WriteString("Name the sub-quadrant and describe the environment where the respondent creates most value.\n")
	b.WriteString("### 2. CRITICAL INDEX DIAGNOSIS\n")
	b.WriteString("Assess IPA (balance between B10 and B4), IRCC (B7 against B6 and patience with B8) and IISE (connector or silo).\n")
	b.WriteString("### 3. PERSONALISED ACTION PLAN (RISK PERSONAS)\n")
	b.WriteString("Look for conflicts such as high B10 with low B3, high B10 with low B4, high B2 with low B7, or low B5, and recommend interventions.\n")
	b.WriteString("### 4. DEVELOPMENT RECOMMENDATIONS\n")
	b.WriteString("Suggest 3 pragmatic practices based on the lowest block scores.\n\n")

	b.WriteString("### STYLE\n")
	b.WriteString("- Professional, analytical and encouraging; concise.\n")
	b.WriteString("- Use modern terminology: self-management, self-direction, shared coordination, emergent leadership.\n")
	b.WriteString("- Focus on where the person creates most value rather than only on weaknesses.\n")
	b.WriteString("- Do not add any introduction before the 4 sections.\n")
	return b.String()
}
