// Package hcloudretry classifies Hetzner Cloud API failures for the retry
// wrapper.
//
// The policy recognizes hcloud.Error values from hcloud-go and retries rate
// limiting plus the lock/conflict codes the API returns while a resource is
// busy with another action.
package hcloudretry
