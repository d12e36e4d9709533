package roadmap

import (
	"context"
	"fmt"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// ChatClient is the slice of the LLM client the generator needs.
type ChatClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

const maxGenerationAttempts = 3

const generationSystemPrompt = `You are Navi, a very realistic and practical expert career strategist AI that creates detailed learning roadmaps.

CRITICAL JSON STRUCTURE RULES:
1. Every month MUST have exactly 4 weeks
2. Every week MUST have exactly 6 daily tasks
3. The roadmap structure MUST be:
{
    "roadmap": [
        {
            "month": 1,
            "month_title": "Specific Month Title",
            "weeks": [
                {
                    "week": 1,
                    "week_number": 1,
                    "focus": "Specific Week Focus",
                    "daily_tasks": [
                        {
                            "day": 1,
                            "title": "Specific Task Title",
                            "description": "Detailed task description"
                        }
                    ]
                }
            ]
        }
    ]
}

CONTENT REQUIREMENTS:
1. NO generic titles like "Week 4 Learning" or "Day 1 Task"
2. Each month_title must describe the learning focus (e.g., "Frontend Framework Mastery")
3. Each week.focus must be specific (e.g., "React Components and Props")
4. Each task must be actionable and include a resource
5. Recommended courses MUST BE FREE`

// attemptOutcome classifies one generation attempt so the retry loop can
// distinguish expected failures from upstream ones without exceptions.
type attemptOutcome int

const (
	attemptSucceeded attemptOutcome = iota
	attemptInvalidStructure
	attemptUpstreamFailure
)

type Generator struct {
	llm ChatClient
	log *logger.Logger
}

func NewGenerator(llm ChatClient, baseLog *logger.Logger) *Generator {
	return &Generator{llm: llm, log: baseLog.With("component", "RoadmapGenerator")}
}

// Generate asks the model for a roadmap and pipes the response through
// sanitize, repair, parse, and validate. Attempts are strictly sequential and
// bounded; after the last failure it returns ErrGenerationExhausted so the
// caller can fall back to a synthetic roadmap.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (*domain.RoadmapDoc, error) {
	if g.llm == nil {
		return nil, ErrGenerationExhausted
	}
	userPrompt := g.userPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		doc, outcome, err := g.attempt(ctx, userPrompt, req.Timeframe)
		switch outcome {
		case attemptSucceeded:
			return doc, nil
		case attemptInvalidStructure:
			g.log.Warn("Invalid roadmap structure, retrying", "attempt", attempt)
		case attemptUpstreamFailure:
			g.log.Warn("Roadmap generation attempt failed", "attempt", attempt, "error", err)
			lastErr = err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationExhausted, lastErr)
	}
	return nil, ErrGenerationExhausted
}

func (g *Generator) attempt(ctx context.Context, userPrompt string, timeframe domain.Timeframe) (*domain.RoadmapDoc, attemptOutcome, error) {
	raw, err := g.llm.ChatCompletion(ctx, generationSystemPrompt, userPrompt)
	if err != nil {
		return nil, attemptUpstreamFailure, err
	}

	cleaned, err := SanitizeResponse(raw)
	if err != nil {
		return nil, attemptUpstreamFailure, err
	}

	doc, err := ParseLenient(cleaned)
	if err != nil {
		return nil, attemptUpstreamFailure, err
	}

	if !ValidateStructure(doc, timeframe, g.log) {
		return nil, attemptInvalidStructure, nil
	}
	return doc, attemptSucceeded, nil
}

func (g *Generator) userPrompt(req GenerationRequest) string {
	months := req.Timeframe.MonthCount()
	return fmt.Sprintf(`Create a %d months roadmap for:

Goal: %s
Target Role: %s
Available Time: %s hours per week
Learning Style: %s
Learning Speed: %s
Skill Level: %s

IMPORTANT: The roadmap MUST contain exactly %d months of content.
Each week should have exactly 6 daily tasks to match the UI template.`,
		months, req.Goal, req.TargetRole, req.HoursPerWeek,
		req.LearningStyle, req.LearningSpeed, req.SkillLevel, months)
}
