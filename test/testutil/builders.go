// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"fmt"
	"time"

	"github.com/sirseerhq/sirseer-prstats/internal/github"
)

// baseTime anchors generated creation dates so fixtures are stable.
var baseTime = time.Date(2019, time.October, 28, 9, 0, 0, 0, time.UTC)

// IssueBuilder provides a fluent API for creating search result items
type IssueBuilder struct {
	repo      string
	number    int
	title     string
	body      string
	createdAt time.Time
}

// NewIssueBuilder creates an item for pull request number with defaults
func NewIssueBuilder(number int) *IssueBuilder {
	return &IssueBuilder{
		repo:      "test/repo",
		number:    number,
		title:     fmt.Sprintf("PR %d", number),
		body:      fmt.Sprintf("This is the body of PR %d", number),
		createdAt: baseTime.Add(time.Duration(number) * time.Hour),
	}
}

// WithRepo sets the owner/name used for the API URL
func (b *IssueBuilder) WithRepo(repo string) *IssueBuilder {
	b.repo = repo
	return b
}

// WithTitle sets the title
func (b *IssueBuilder) WithTitle(title string) *IssueBuilder {
	b.title = title
	return b
}

// WithBody sets the body
func (b *IssueBuilder) WithBody(body string) *IssueBuilder {
	b.body = body
	return b
}

// WithCreatedAt sets the creation time
func (b *IssueBuilder) WithCreatedAt(t time.Time) *IssueBuilder {
	b.createdAt = t
	return b
}

// Build creates the search result item
func (b *IssueBuilder) Build() github.IssueSummary {
	return github.IssueSummary{
		Number:    b.number,
		Title:     b.title,
		CreatedAt: b.createdAt.Format(time.RFC3339),
		URL:       fmt.Sprintf("https://api.github.com/repos/%s/issues/%d", b.repo, b.number),
		Body:      b.body,
	}
}

// GenerateIssues returns count default items numbered from start upward,
// created in ascending order.
func GenerateIssues(start, count int) []github.IssueSummary {
	issues := make([]github.IssueSummary, 0, count)
	for n := start; n < start+count; n++ {
		issues = append(issues, NewIssueBuilder(n).Build())
	}
	return issues
}
