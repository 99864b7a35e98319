// Package anim advances the scene once per display frame.
package anim
