package gemini

// reconstructionPrompt instructs the model to reconstruct a metabolic
// pathway from the uploaded documents as a structured JSON model plus a
// plain-language explanation. The evidence field drives quote localization
// downstream, so the prompt insists on exact substrings.
const reconstructionPrompt = `## Metabolic Pathway Reconstruction

**Task**
Extract and reconstruct a metabolic pathway ONLY from the contents of the
uploaded document(s). Synthesize information from ALL provided documents to
build a comprehensive model. Do not use outside knowledge — if the documents
lack information, say so explicitly.

**Goal**
Output a structured pathway model that captures metabolites, enzymes,
reaction directionality, cofactors, regulators (feedback, inhibition,
activation), compartments (if stated), organ/tissue context, organism/model
context, reaction type (metabolic vs transport), certainty status (confirmed
vs hypothetical), and primary source (if evidence is secondary).

### Extraction Procedure

**Step 1 — Identify biochemical entities**
Extract all relevant biological elements mentioned in the documents:
metabolites and intermediates, enzymes, transporters, coenzymes. Keep all
names exactly as written in the documents. If multiple names or synonyms are
listed, include them.

**Step 2 — List metabolic reactions**
For each reaction mentioned, identify: substrate(s), product(s), enzyme(s),
required cofactors, directionality ("reversible" or "irreversible"), any
pathway branching.
- **Organ/Tissue**: where the reaction occurs (e.g., Liver, Gut, Kidney);
  "Unknown" if not stated.
- **Organism**: the organism or model it was found in (e.g., Human, Mouse,
  Rat, Microbial).
- **Type**: "Metabolic" or "Transport".
- **Certainty**: "Confirmed" (stated as fact) or "Hypothetical" (suggested,
  proposed, hypothesized).
- **Primary Source**: if the text cites another paper for this reaction,
  extract that citation; null if it is a primary finding.

**CRITICAL: Ordering** — organize the reactions in a logical, physiological
order: ingestion/uptake, then metabolism, then excretion/secretion.

**Step 3 — Extract regulatory information**
If present, identify inhibitors, activators, transcriptional regulators, and
allosteric feedback. Leave these fields empty when regulation is not
described.

**Step 4 — Build the JSON pathway model**

` + "```json" + `
{
  "metabolites": [],
  "enzymes": [],
  "reactions": [
    {
      "id": "",
      "type": "Metabolic",
      "certainty": "Confirmed",
      "organ": "Liver",
      "organism": "Human",
      "primary_source": null,
      "substrates": [],
      "products": [],
      "enzyme": "",
      "cofactors": [],
      "reversible": null,
      "regulation": {
        "inhibitors": [],
        "activators": []
      },
      "compartment": "",
      "evidence": ["exact quote 1", "exact quote 2"]
    }
  ]
}
` + "```" + `

### Rules for JSON
- Use exact names from the documents.
- If something is unknown, write "unknown" or null.
- If multiple interpretations exist, list them all.
- Do not insert external biological knowledge or inferred steps.
- **"evidence"**: MANDATORY for each reaction. Extract at least 1-2 EXACT
  string quotes from the text that support the specific reaction. CRITICAL:
  the quotes must be EXACT substrings found in the documents.

### Final deliverables
1. The JSON metabolic pathway model.
2. A plain-language explanation (short summary) describing the pathway
   purpose, the sequence and logic of reactions, key regulatory bottlenecks,
   and any ambiguous or incomplete sections.

Base all information ONLY on content found in the documents. If information
is incomplete or missing, describe what data would be needed to complete the
reconstruction.`
