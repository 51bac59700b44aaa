package compose

import (
	"fmt"
	"strings"

	"github.com/ka-reem/mail-agent/internal/contacts"
)

// systemPrompt frames every completion call.
const systemPrompt = "You are a professional email writing assistant. Generate complete, ready-to-send emails based on the user's requirements."

// defaultSenderInfo is used when the user supplied nothing about themselves;
// it keeps the model from inventing a persona.
const defaultSenderInfo = "Professional with relevant experience seeking opportunities"

// criticalInstructions are shared across all prompt variants. The sender-info
// rules stop the model from fabricating personal facts; the placeholder and
// signature rules keep output send-ready (the user's signature is appended
// separately by the workflow engine).
const criticalInstructions = `CRITICAL INSTRUCTIONS - READ CAREFULLY:
- When you need information about the sender (like name, background, experience, education), ONLY use the "Sender Information" provided above
- NEVER make up names, majors, companies, or personal details about the sender
- If sender information is not provided for something specific, write in a general professional manner without specific personal details
- NEVER leave anything blank or as placeholder text like [Your Name], [Company], "your major here", etc.
- The email must be 100% complete and ready to send without any editing needed
- DO NOT include any closing signatures, sign-offs, or closing statements like "Best regards," "Sincerely," etc.
- The user will add their own signature separately`

const formatFooter = "Format your response as:\nSUBJECT: [subject line here]\nBODY: [email body here]"

// buildPrompt constructs the completion prompt: template-enhancement when a
// template is configured, custom-prompt when a prompt is configured, and a
// generic personalized-email request otherwise.
func buildPrompt(id identity, cfg Config, contact *contacts.Contact, senderInfo string) string {
	var b strings.Builder

	switch {
	case cfg.Template != "":
		b.WriteString("You are writing a professional email. Use this template but make it more engaging and personalized:\n\n")
		fmt.Fprintf(&b, "Template: %s\n\n", cfg.Template)
		writeRecipientDetails(&b, id, contact)
		writeSenderInfo(&b, senderInfo)
		b.WriteString(criticalInstructions)
		b.WriteString("\n- Generate a compelling subject line and enhance the email body")
		b.WriteString("\n- Replace ALL placeholders like {name}, {company}, {title}, etc. with actual content\n")
		if cfg.CustomizePerRecipient {
			b.WriteString("\nGenerate highly customized content based on the recipient's company and background.\n")
		} else {
			b.WriteString("\nIMPORTANT: Generate VERY similar content for consistency across recipients. Only personalize the name and company.\n")
		}

	case cfg.Prompt != "":
		b.WriteString(cfg.Prompt)
		b.WriteString("\n\n")
		writeRecipientDetails(&b, id, contact)
		writeSenderInfo(&b, senderInfo)
		b.WriteString(criticalInstructions)
		b.WriteString("\n- Generate both a compelling subject line and email body\n")
		if cfg.CustomizePerRecipient {
			b.WriteString("\nCreate unique, highly personalized content based on the recipient's specific company and industry.\n")
		} else {
			b.WriteString("\nIMPORTANT: Keep the core message consistent across all recipients. Only personalize names and companies.\n")
		}

	default:
		fmt.Fprintf(&b, "Write a professional, personalized email to %s who works at %s as a %s (%s).\n",
			id.Name, id.Company, id.Title, id.Email)
		writeOriginalContext(&b, contact)
		b.WriteString("\n")
		writeSenderInfo(&b, senderInfo)
		b.WriteString(criticalInstructions)
		b.WriteString("\n- Make it engaging and professional\n- Generate both subject and body\n")
		if cfg.CustomizePerRecipient {
			b.WriteString("\nResearch typical companies in their domain and create highly specific, customized content.\n")
		} else {
			b.WriteString("\nKeep the message professional and consistent. Only personalize with their name and company.\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatFooter)
	return b.String()
}

func writeRecipientDetails(b *strings.Builder, id identity, contact *contacts.Contact) {
	b.WriteString("Recipient Details:\n")
	fmt.Fprintf(b, "- Name: %s\n", id.Name)
	fmt.Fprintf(b, "- Company: %s\n", id.Company)
	fmt.Fprintf(b, "- Title: %s\n", id.Title)
	fmt.Fprintf(b, "- Email: %s\n", id.Email)
	writeOriginalContext(b, contact)
	b.WriteString("\n")
}

// writeOriginalContext includes the full source record so the model can use
// fields the canonical contact shape does not cover.
func writeOriginalContext(b *strings.Builder, contact *contacts.Contact) {
	if contact == nil || len(contact.Original) == 0 {
		return
	}
	fmt.Fprintf(b, "- Additional Context: %v\n", contact.Original)
}

func writeSenderInfo(b *strings.Builder, senderInfo string) {
	if senderInfo == "" {
		senderInfo = defaultSenderInfo
	}
	fmt.Fprintf(b, "Sender Information (USE THIS FOR ANY PERSONAL DETAILS):\n%s\n\n", senderInfo)
}
