package analysis

import "fmt"

const summaryPromptTemplate = `Summarize the following legal document, highlighting key points, important dates, amounts, and strong policies.
Use markdown headers, bold text and bullet lists for formatting.

Document:
%s
`

const riskPromptTemplate = `Analyze the following legal document for potential risks. Categorize each risk as high, medium, or low.
For each risk, provide the relevant text, an explanation, and a suggested replacement.
If no replacement is possible or necessary, explain why instead of writing "N/A".

Document:
%s

Format the output as a JSON object with the following structure:
{
  "high": [
    {"text": "relevant text", "explanation": "why this is a high risk", "replacement": "suggested replacement text or why none is given"}
  ],
  "medium": [
    {"text": "relevant text", "explanation": "why this is a medium risk", "replacement": "suggested replacement text or why none is given"}
  ],
  "low": [
    {"text": "relevant text", "explanation": "why this is a low risk", "replacement": "suggested replacement text or why none is given"}
  ]
}
Every risk must have a meaningful replacement or explanation. Do not use "N/A" or null values.
`

const legalAspectsPromptTemplate = `Analyze the following legal document as an expert lawyer and describe these aspects:
1. IRAC Analysis
2. Guidelines or Governing Laws
3. Consideration
4. Parties
5. Indemnity Clause
6. Obligations
7. Jurisdiction

Document:
%s

Every field must be a single string, never an object.

Format your response as a valid JSON object with this structure:
{
  "irac": "IRAC analysis of the document. If not applicable, explain why.",
  "guidelines": "Relevant guidelines or governing laws. If none are mentioned, say that no specific guidelines are provided in the document.",
  "consideration": "Details about the consideration in the document.",
  "parties": "Details about the parties involved in the document.",
  "indemnity": "Information about the indemnity clause. If absent, say that no indemnity clause is included in the document.",
  "obligations": "Details about the obligations of the parties in the document.",
  "jurisdiction": "Jurisdiction information from the document. If unspecified, say that no jurisdiction is mentioned in the document."
}
Return only valid JSON. Do not use null values; explain missing information in text instead.
`

const chatPromptTemplate = `Given the following legal document:

%s

Answer the following question:

%s

Use markdown formatting for headers and bold text where appropriate.
`

const checkTermsPromptTemplate = `As a legal advisor, analyze the following document against the user's terms.

Document:
%s

User Terms (things the user does not want in the document):
%s

Check whether any statement in the document violates the user's terms.
Pay special attention to numerical values, dates, and specific phrases mentioned in the user terms.
If there are violations, list them explicitly, quoting the relevant parts of the document.

Format your response as follows:
- If there are violations: "The following statements violate the user's terms: [list of violating statements with explanations]"
- If there are no violations: "The document complies with the user's terms."

Explain each violation or the compliance, referencing specific parts of the document and the user terms.
`

func BuildSummaryPrompt(document string) string {
	return fmt.Sprintf(summaryPromptTemplate, document)
}

func BuildRiskPrompt(document string) string {
	return fmt.Sprintf(riskPromptTemplate, document)
}

func BuildLegalAspectsPrompt(document string) string {
	return fmt.Sprintf(legalAspectsPromptTemplate, document)
}

func BuildChatPrompt(document, question string) string {
	return fmt.Sprintf(chatPromptTemplate, document, question)
}

func BuildCheckTermsPrompt(document, userTerms string) string {
	return fmt.Sprintf(checkTermsPromptTemplate, document, userTerms)
}
