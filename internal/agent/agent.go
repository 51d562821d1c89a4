package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/cv-assistant/internal/llm"
	"github.com/jonathan/cv-assistant/internal/prompts"
)

// User-facing conversation messages. Kept as fixed templates so every
// question is data-driven rather than hand-coded per turn.
const (
	msgGreeting = "Hi! I'm going to help you create a tailored CV for the '%s' position. " +
		"Let's start with some basic personal information. " +
		"Can you provide your full name, email address, and phone number?"

	msgAskExperience = "Thank you, %s. " +
		"Now, please tell me about your relevant work experience for the position of %s. " +
		"Include the company name, your role, dates, and a brief description of your responsibilities."

	msgRetryPersonalInfo = "I couldn't clearly identify all your personal info. " +
		"Please provide your information like this:\n\n" +
		"Name: John Doe\nEmail: john@example.com\nPhone: +123456789"

	msgAskMoreDetails = "Thanks for sharing. Could you please provide more details about that role? " +
		"For example, what kind of projects did you work on, or what impact did you have?"

	msgAskEducation = "Great. Now, could you tell me about your educational background? " +
		"Include degrees, institutions, and graduation years."

	msgAskSkills = "Perfect. Lastly, what technical and soft skills do you believe make you " +
		"a strong candidate for the position of %s?"

	msgCollected = "Great! I have collected all the necessary information to generate your tailored CV " +
		"for the position of %s. Now I will generate a professional CV " +
		"based on your details and optimized for this specific job."

	msgReady = "Your CV is ready to be generated."

	msgUnexpected = "An unexpected error occurred in the process. Please try again."
)

// defaultName replaces the candidate name when extraction fails outright.
const defaultName = "User"

// Agent drives the CV-collection conversation. Each Turn performs one
// synchronous call-and-wait cycle against the model gateway.
type Agent struct {
	client llm.Client
}

// New creates an Agent using the given gateway client.
func New(client llm.Client) *Agent {
	return &Agent{client: client}
}

// Turn advances the conversation by one user turn. A nil session starts a new
// conversation from the job posting. It returns the next message to show the
// user, the updated session (nil when session creation fails), and whether
// data collection is complete.
func (a *Agent) Turn(ctx context.Context, jobPostingText, userReply string, session *Session) (string, *Session, bool) {
	if session == nil {
		return a.initSession(ctx, jobPostingText)
	}

	switch session.Phase {
	case PhaseCollectingPersonalInfo:
		return a.collectPersonalInfo(ctx, userReply, session)
	case PhaseCollectingExperience:
		return a.collectExperience(ctx, userReply, session)
	case PhaseCollectingEducation:
		session.EducationEntries = append(session.EducationEntries, userReply)
		session.Phase = PhaseCollectingSkills
		return fmt.Sprintf(msgAskSkills, session.JobPosting.Title), session, false
	case PhaseCollectingSkills:
		session.SkillsEntries = append(session.SkillsEntries, userReply)
		session.Phase = PhaseFinalized
		log.Printf("[agent] session finalized: %d experience, %d education, %d skills entries",
			len(session.ExperienceEntries), len(session.EducationEntries), len(session.SkillsEntries))
		return fmt.Sprintf(msgCollected, session.JobPosting.Title), session, true
	case PhaseFinalized:
		return msgReady, session, true
	default:
		// Unreachable given the fixed transition set; defensive only.
		return msgUnexpected, nil, false
	}
}

// initSession analyzes the job posting and creates a fresh session. Session
// creation fails atomically: a gateway failure yields a nil session.
func (a *Agent) initSession(ctx context.Context, jobPostingText string) (string, *Session, bool) {
	prompt := prompts.Format(prompts.MustGet("agent.json", "analyze-posting"), map[string]string{
		"JobText": jobPostingText,
	})

	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error analyzing job posting: %v", err), nil, false
	}

	title := parseJobTitle(reply)
	log.Printf("[agent] new session for %q", title)

	session := &Session{
		Phase: PhaseCollectingPersonalInfo,
		JobPosting: JobPosting{
			Title:   title,
			RawText: jobPostingText,
		},
	}

	return fmt.Sprintf(msgGreeting, title), session, false
}

// collectPersonalInfo runs three independent extraction calls against the
// user's reply. Each failed call defaults its field rather than aborting.
// The phase advances only once both name and email are non-empty; this is
// the one state that can loop on itself.
func (a *Agent) collectPersonalInfo(ctx context.Context, userReply string, session *Session) (string, *Session, bool) {
	// Fields are never cleared once set; an empty extraction keeps the
	// previous value.
	if name := a.extractField(ctx, "extract-name", userReply, defaultName); name != "" {
		session.Personal.Name = name
	}
	if email := a.extractField(ctx, "extract-email", userReply, ""); email != "" {
		session.Personal.Email = email
	}
	if phone := a.extractField(ctx, "extract-phone", userReply, ""); phone != "" {
		session.Personal.Phone = phone
	}

	if session.Personal.Name != "" && session.Personal.Email != "" {
		session.Phase = PhaseCollectingExperience
		return fmt.Sprintf(msgAskExperience, session.Personal.Name, session.JobPosting.Title), session, false
	}

	return msgRetryPersonalInfo, session, false
}

// collectExperience appends the reply and bumps the follow-up counter before
// any analysis, so user input survives a downstream model failure. Only the
// follow-up decision itself is allowed to be wrong.
func (a *Agent) collectExperience(ctx context.Context, userReply string, session *Session) (string, *Session, bool) {
	session.ExperienceEntries = append(session.ExperienceEntries, userReply)
	session.FollowupsAsked++

	analysis := a.analyzeExperience(ctx, userReply, session.JobPosting.Title)

	if analysis.NeedsMoreDetails && session.FollowupsAsked < MaxFollowups {
		return msgAskMoreDetails, session, false
	}

	session.Phase = PhaseCollectingEducation
	return msgAskEducation, session, false
}

// analyzeExperience asks the gateway whether the latest experience entry is
// complete, relevant and detailed enough. Failures yield the documented
// defaults so the conversation always progresses.
func (a *Agent) analyzeExperience(ctx context.Context, experience, jobTitle string) experienceAnalysis {
	prompt := prompts.Format(prompts.MustGet("agent.json", "analyze-experience"), map[string]string{
		"Experience": experience,
		"JobTitle":   jobTitle,
	})

	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[agent] experience analysis failed, using defaults: %v", err)
		return defaultExperienceAnalysis()
	}

	return parseExperienceAnalysis(reply)
}

// extractField sends one extraction prompt for a single personal-info field,
// substituting fallback when the call fails.
func (a *Agent) extractField(ctx context.Context, promptKey, userReply, fallback string) string {
	prompt := prompts.Format(prompts.MustGet("agent.json", promptKey), map[string]string{
		"Text": userReply,
	})

	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return fallback
	}

	return strings.TrimSpace(reply)
}
