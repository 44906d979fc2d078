package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/smallbizdoctor/backend/internal/entity"
)

const newsletterSystemPrompt = `You are Ryan, a tech consultant who helps small businesses use AI and technology. Write a bi-weekly newsletter that feels personal and conversational - like you're talking to a friend over coffee.

Key guidelines:
- Write in first person as Ryan
- Be warm, approachable, and practical
- Share 2-3 actionable AI tips that small business owners can implement immediately
- Include real-world examples and use cases
- Avoid corporate jargon and buzzwords
- Don't sound like AI - be natural and human
- Keep it concise but valuable (300-500 words for email)
- End with a personal note or question to encourage replies

Topics to cover (pick 2-3):
- ChatGPT tips for customer service, marketing, or operations
- Free AI tools that save time
- Automation ideas for small businesses
- How to use AI without technical skills
- Common AI mistakes to avoid
- Success stories from small businesses using AI`

const newsletterUserPrompt = `Write the next bi-weekly newsletter. Make it feel fresh and timely. Include a catchy subject line at the start (format: "Subject: [your subject line]").`

const smsSystemPrompt = `You are Ryan. Write a very short SMS (under 160 characters) that teases the newsletter content and encourages people to check their email. Be casual and friendly. Do not include links.`

const defaultSubject = "AI Tips for Your Business"

var subjectLine = regexp.MustCompile(`(?i)Subject:\s*(.+)`)

// GenerateNewsletterUseCase asks the text-generation provider for a
// newsletter body plus an SMS teaser and stores the result as a draft
// awaiting operator review.
type GenerateNewsletterUseCase struct {
	Generator TextGenerator
	DraftRepo entity.NewsletterDraftRepositoryInterface
}

func NewGenerateNewsletterUseCase(generator TextGenerator, draftRepo entity.NewsletterDraftRepositoryInterface) *GenerateNewsletterUseCase {
	return &GenerateNewsletterUseCase{
		Generator: generator,
		DraftRepo: draftRepo,
	}
}

func (uc *GenerateNewsletterUseCase) Execute(ctx context.Context) (*entity.NewsletterDraft, error) {
	if uc.Generator == nil {
		return nil, &ConfigurationError{Service: "OpenAI API key"}
	}

	full, err := uc.Generator.Complete(ctx, newsletterSystemPrompt, newsletterUserPrompt, 0.8, 1000)
	if err != nil {
		return nil, &DispatchError{Detail: "failed to generate newsletter", Cause: err}
	}

	subject, content := splitSubject(full)

	smsContent, err := uc.Generator.Complete(ctx, smsSystemPrompt,
		"The newsletter is about: "+subject+". Write the SMS teaser.", 0.7, 50)
	if err != nil {
		return nil, &DispatchError{Detail: "failed to generate newsletter", Cause: err}
	}

	draft := entity.NewNewsletterDraft(subject, content, strings.TrimSpace(smsContent))
	if err := uc.DraftRepo.Create(ctx, draft); err != nil {
		return nil, &StorageError{Message: "failed to save draft", Cause: err}
	}

	return draft, nil
}

// splitSubject pulls a leading "Subject: ..." line out of the completion.
func splitSubject(full string) (subject, content string) {
	subject = defaultSubject
	content = full
	if m := subjectLine.FindStringSubmatch(full); m != nil {
		subject = strings.TrimSpace(m[1])
		content = strings.Replace(full, m[0], "", 1)
	}
	return subject, strings.TrimSpace(content)
}
