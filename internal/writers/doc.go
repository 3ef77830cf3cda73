// Package writers turns a label sequence into the serialized report.
//
// Design:
//   • Writers own all presentation knowledge (line shape, pass order).
//   • Core stays domain-only; app stays orchestration-only.
//   • Every line goes through output.LineFormat for a stable shape.
package writers
