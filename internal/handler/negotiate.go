package handler // handler package picks the response representation here

import (
    "mime"    // mime parses each Accept entry
    "strconv" // strconv reads the q parameter
    "strings" // strings splits the header
)

// Representation is the response shape chosen for a request.
type Representation int

const (
    RepresentationHTML Representation = iota
    RepresentationJSON
)

func (r Representation) String() string {
    if r == RepresentationJSON {
        return "json"
    }
    return "html"
}

// negotiate picks JSON only when the Accept header names application/json
// explicitly with a non-zero quality that is at least the quality HTML would
// get.  Wildcards count towards HTML, never towards JSON.  A missing or
// unparseable header yields HTML.
func negotiate(accept string) Representation {
    jsonQ := -1.0 // -1 means not listed
    htmlQ, textAnyQ, anyQ := -1.0, -1.0, -1.0
    for _, part := range strings.Split(accept, ",") {
        part = strings.TrimSpace(part)
        if part == "" {
            continue // tolerate "a,,b"
        }
        mt, params, err := mime.ParseMediaType(part)
        if err != nil {
            continue // skip malformed entries
        }
        q := 1.0 // default quality
        if v, ok := params["q"]; ok {
            f, err := strconv.ParseFloat(v, 64)
            if err != nil || f < 0 || f > 1 {
                continue // out of range q ignores the entry
            }
            q = f
        }
        switch mt {
        case "application/json":
            jsonQ = max(jsonQ, q)
        case "text/html":
            htmlQ = max(htmlQ, q)
        case "text/*":
            textAnyQ = max(textAnyQ, q)
        case "*/*":
            anyQ = max(anyQ, q)
        }
    }

    // the most specific range that matches text/html decides its quality
    switch {
    case htmlQ >= 0:
    case textAnyQ >= 0:
        htmlQ = textAnyQ
    default:
        htmlQ = anyQ
    }

    if jsonQ > 0 && jsonQ >= htmlQ { // ties go to JSON
        return RepresentationJSON
    }
    return RepresentationHTML
}
