package extractor

const structuredPrompt = `
You are an expert job information extractor. Analyze the following job posting text and extract key information.

IMPORTANT INSTRUCTIONS:
1. Look for job title, company name, location, and job description
2. If you cannot find specific information, make reasonable inferences from the context
3. Always return valid JSON format
4. If multiple jobs are mentioned, extract all of them
5. Return ONLY the JSON array, no other text

REQUIRED JSON FORMAT:
[
  {
    "title": "extracted or inferred job title",
    "company": "extracted or inferred company name",
    "location": "extracted or inferred location",
    "description": "key responsibilities and requirements summary"
  }
]

JOB POSTING TEXT:
%s

EXTRACTED JSON:
`

const narrativePrompt = `
Please analyze this job posting and answer these specific questions:

1. What is the job title or position name?
2. What is the company name?
3. Where is the job located?
4. What are the main responsibilities or requirements?

Job Posting:
%s

Based on your analysis, format the response as:
TITLE: [job title]
COMPANY: [company name]
LOCATION: [location]
DESCRIPTION: [brief summary of role and requirements]
`
