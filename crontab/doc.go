// Copyright 2019 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package crontab documents the schedule-expression grammar accepted by
github.com/xgfone/nanocron. It holds no code of its own; parsing lives in
the root nanocron package.

Schedule Expression Format

A schedule expression has exactly seven whitespace-separated fields:

	Field name    | Allowed values | Allowed special characters
	------------- | --------------- | --------------------------
	Nanosecond    | 0-999999999     | * / , -
	Second        | 0-59            | * / , -
	Minute        | 0-59            | * / , -
	Hour          | 0-23            | * / , -
	Day of month  | 1-31            | * / , -
	Month         | 1-12            | * / , -
	Day of week   | 0-6 (0 = Sunday) | * / , -

Unlike github.com/robfig/cron, fields are strictly numeric: no month or
weekday names, no "?" placeholder, and no "@every"/"@daily" descriptors.
A schedule expression is capped at 512 bytes.

Special Characters

Asterisk ( * )

An asterisk matches every value the field allows and additionally marks
the field as a wildcard, which matters for the day-of-month/day-of-week
disjunction rule below.

Slash ( / )

Slashes describe increments. "10-50/5" in the minute field matches the
10th minute of the hour and every 5 minutes up to the 50th. The form
"N/step" is accepted as meaning "N-max/step": starting at N, step until
the end of the field's range. It does not wrap around.

Comma ( , )

Commas separate a list of values or ranges, e.g. "1,15,30" in the minute
field.

Hyphen ( - )

Hyphens define an inclusive range, e.g. "9-17" in the hour field.

Day-of-month / Day-of-week Disjunction

When both the day-of-month and day-of-week fields are restricted (not a
bare "*"), an instant matches if EITHER field matches: this is the classic
vixie-cron rule, not set intersection. When one of the two fields is a
bare wildcard, only the other field's match decides the outcome, as if
the wildcarded field were absent.

Nanosecond Precision

The leading nanosecond field lets a schedule fire more than once within
the same second. A schedule with a restricted nanosecond field is most
useful combined with Registry.NextTrigger, which returns the next exact
Instant (down to the nanosecond) a schedule will match.
*/
package crontab
