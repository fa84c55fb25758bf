package corpus

import (
	"github.com/mailru/easyjson/jlexer"
)

// Reviews is the top-level structure of a review file.
type Reviews []Review

// decodeOpinion reads one opinion. "polarity" is accepted in place of
// "sentiment".
func decodeOpinion(in *jlexer.Lexer, out *Opinion) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "aspect":
			out.Aspect = string(in.String())
		case "sentiment", "polarity":
			out.Sentiment = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// decodeReview reads one review, skipping unknown and null fields.
func decodeReview(in *jlexer.Lexer, out *Review) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "text":
			out.Text = string(in.String())
		case "opinions":
			in.Delim('[')
			if out.Opinions == nil {
				if !in.IsDelim(']') {
					out.Opinions = make([]Opinion, 0, 2)
				} else {
					out.Opinions = []Opinion{}
				}
			} else {
				out.Opinions = (out.Opinions)[:0]
			}
			for !in.IsDelim(']') {
				var v Opinion
				decodeOpinion(in, &v)
				out.Opinions = append(out.Opinions, v)
				in.WantComma()
			}
			in.Delim(']')
		case "labels":
			in.Delim('[')
			if out.Labels == nil {
				if !in.IsDelim(']') {
					out.Labels = make([]string, 0, 4)
				} else {
					out.Labels = []string{}
				}
			} else {
				out.Labels = (out.Labels)[:0]
			}
			for !in.IsDelim(']') {
				out.Labels = append(out.Labels, string(in.String()))
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func decodeReviews(in *jlexer.Lexer, out *Reviews) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*out = nil
	} else {
		in.Delim('[')
		if *out == nil {
			if !in.IsDelim(']') {
				*out = make(Reviews, 0, 8)
			} else {
				*out = Reviews{}
			}
		} else {
			*out = (*out)[:0]
		}
		for !in.IsDelim(']') {
			var v Review
			decodeReview(in, &v)
			*out = append(*out, v)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Review) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	decodeReview(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Review) UnmarshalEasyJSON(l *jlexer.Lexer) {
	decodeReview(l, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Reviews) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	decodeReviews(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Reviews) UnmarshalEasyJSON(l *jlexer.Lexer) {
	decodeReviews(l, v)
}
